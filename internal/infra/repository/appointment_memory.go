package repository

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

// AppointmentMemoryRepository guarda todo o estado em memória de processo.
// Um único mutex cobre o check-then-commit inteiro: duas reservas
// simultâneas para o mesmo barbeiro+horário nunca passam as duas.
type AppointmentMemoryRepository struct {
	mu sync.Mutex

	barbers   map[string]*models.Barber
	customers map[string]*models.Customer
}

func NewAppointmentMemoryRepository() *AppointmentMemoryRepository {
	return &AppointmentMemoryRepository{
		barbers:   make(map[string]*models.Barber),
		customers: make(map[string]*models.Customer),
	}
}

// --------------------------------------------------
// Carga inicial (fixtures / cadastro)
// --------------------------------------------------

func (r *AppointmentMemoryRepository) PutBarber(b *models.Barber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.Appointments == nil {
		b.Appointments = []*models.Appointment{}
	}
	r.barbers[b.ID] = b
}

func (r *AppointmentMemoryRepository) PutCustomer(c *models.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.Appointments == nil {
		c.Appointments = []*models.Appointment{}
	}
	r.customers[c.ID] = c
}

// --------------------------------------------------
// Leitura — sempre snapshots independentes
// --------------------------------------------------

func (r *AppointmentMemoryRepository) ListBarbers(
	ctx context.Context,
) ([]*models.Barber, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Barber, 0, len(r.barbers))
	for _, b := range r.barbers {
		out = append(out, cloneBarber(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *AppointmentMemoryRepository) GetBarberByID(
	ctx context.Context,
	id string,
) (*models.Barber, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.barbers[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
	}
	return cloneBarber(b), nil
}

func (r *AppointmentMemoryRepository) ListCustomers(
	ctx context.Context,
) ([]*models.Customer, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, cloneCustomer(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *AppointmentMemoryRepository) GetCustomerByID(
	ctx context.Context,
	id string,
) (*models.Customer, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.customers[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeCustomerNotFound)
	}
	return cloneCustomer(c), nil
}

// --------------------------------------------------
// Escrita — tudo dentro da mesma seção crítica
// --------------------------------------------------

func (r *AppointmentMemoryRepository) WithTx(
	ctx context.Context,
	fn func(tx domain.Tx) error,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	return fn(&memoryTx{repo: r})
}

type memoryTx struct {
	repo *AppointmentMemoryRepository
}

// Dentro da transação as referências são as reais: o usecase decide e o
// commit acontece antes de soltar o mutex.
func (tx *memoryTx) BarberByID(id string) (*models.Barber, error) {
	b, ok := tx.repo.barbers[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
	}
	return b, nil
}

func (tx *memoryTx) CustomerByID(id string) (*models.Customer, error) {
	c, ok := tx.repo.customers[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeCustomerNotFound)
	}
	return c, nil
}

func (tx *memoryTx) Insert(ap *models.Appointment) error {
	b, err := tx.BarberByID(ap.BarberID)
	if err != nil {
		return err
	}
	c, err := tx.CustomerByID(ap.CustomerID)
	if err != nil {
		return err
	}

	// Cópias independentes nos dois lados, mesma identidade.
	b.Appointments = append(b.Appointments, ap.Clone())
	c.Appointments = append(c.Appointments, ap.Clone())
	return nil
}

func (tx *memoryTx) SetStatus(
	barberID string,
	appointmentID string,
	next domain.Status,
	now time.Time,
) (*models.Appointment, error) {

	b, err := tx.BarberByID(barberID)
	if err != nil {
		return nil, err
	}

	bi := indexByID(b.Appointments, appointmentID)
	if bi < 0 {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	barberCopy := b.Appointments[bi]

	c, err := tx.CustomerByID(barberCopy.CustomerID)
	if err != nil {
		return nil, err
	}

	ci := indexByID(c.Appointments, appointmentID)
	if ci < 0 {
		// Espelhamento quebrado: o id existe na agenda do barbeiro mas
		// não no histórico do cliente. Não mutar nada.
		log.Printf(
			"MIRROR VIOLATION: appointment %s present for barber %s, missing for customer %s",
			appointmentID, barberID, barberCopy.CustomerID,
		)
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	// Valida a transição antes de tocar em qualquer lado.
	if err := domain.CanTransition(domain.Status(barberCopy.Status), next); err != nil {
		return nil, err
	}

	if err := domain.ApplyStatus(barberCopy, next, now); err != nil {
		return nil, err
	}
	if err := domain.ApplyStatus(c.Appointments[ci], next, now); err != nil {
		// Inalcançável com as cópias espelhadas; registrado por segurança.
		log.Printf("MIRROR VIOLATION: diverging status for appointment %s", appointmentID)
		return nil, err
	}

	return barberCopy.Clone(), nil
}

func (tx *memoryTx) Remove(
	customerID string,
	appointmentID string,
) (*models.Appointment, error) {

	c, err := tx.CustomerByID(customerID)
	if err != nil {
		return nil, err
	}

	ci := indexByID(c.Appointments, appointmentID)
	if ci < 0 {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	removed := c.Appointments[ci]

	b, err := tx.BarberByID(removed.BarberID)
	if err != nil {
		return nil, err
	}
	bi := indexByID(b.Appointments, appointmentID)
	if bi < 0 {
		log.Printf(
			"MIRROR VIOLATION: appointment %s present for customer %s, missing for barber %s",
			appointmentID, customerID, removed.BarberID,
		)
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	c.Appointments = append(c.Appointments[:ci], c.Appointments[ci+1:]...)
	b.Appointments = append(b.Appointments[:bi], b.Appointments[bi+1:]...)

	return removed.Clone(), nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func indexByID(list []*models.Appointment, id string) int {
	for i, ap := range list {
		if ap.ID == id {
			return i
		}
	}
	return -1
}

func cloneBarber(b *models.Barber) *models.Barber {
	cp := *b
	cp.Appointments = cloneSchedule(b.Appointments)
	return &cp
}

func cloneCustomer(c *models.Customer) *models.Customer {
	cp := *c
	cp.Appointments = cloneSchedule(c.Appointments)
	return &cp
}

func cloneSchedule(list []*models.Appointment) []*models.Appointment {
	out := make([]*models.Appointment, 0, len(list))
	for _, ap := range list {
		out = append(out, ap.Clone())
	}
	return out
}
