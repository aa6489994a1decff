package models

import "time"

// Appointment é duplicado por design: uma cópia na agenda do barbeiro,
// outra no histórico do cliente. As duas cópias precisam ser gravadas juntas.
type Appointment struct {
	ID string `json:"id"`

	BarberID   string `json:"barber_id"`
	CustomerID string `json:"customer_id"`

	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:mm (24h)

	Status string `json:"status"`

	CanceledAt  *time.Time `json:"canceled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// When combina Date+Time no fuso informado. Usado para decidir se o
// agendamento ainda está no futuro.
func (a *Appointment) When(loc *time.Location) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.Time, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Clone devolve uma cópia independente. Nunca compartilhar ponteiros entre
// a agenda do barbeiro e o histórico do cliente.
func (a *Appointment) Clone() *Appointment {
	cp := *a
	if a.CanceledAt != nil {
		t := *a.CanceledAt
		cp.CanceledAt = &t
	}
	if a.CompletedAt != nil {
		t := *a.CompletedAt
		cp.CompletedAt = &t
	}
	return &cp
}
