package models

import "time"

// Cliente simples, sem login.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`

	// Histórico do cliente (cópia dona do lado do cliente).
	Appointments []*Appointment `json:"appointments"`

	CreatedAt time.Time `json:"created_at"`
}
