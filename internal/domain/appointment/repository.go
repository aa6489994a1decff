package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/booking-core/internal/models"
)

// Tx dá acesso exclusivo ao estado durante WithTx. Toda escrita dupla
// (agenda do barbeiro + histórico do cliente) acontece dentro de uma
// única seção crítica — ou os dois lados mudam, ou nenhum.
type Tx interface {
	BarberByID(id string) (*models.Barber, error)
	CustomerByID(id string) (*models.Customer, error)

	// Insert grava o agendamento nas duas coleções como uma unidade.
	Insert(ap *models.Appointment) error

	// SetStatus aplica a transição nas duas coleções. Se o id faltar em
	// qualquer um dos lados, nada é alterado.
	SetStatus(
		barberID string,
		appointmentID string,
		next Status,
		now time.Time,
	) (*models.Appointment, error)

	// Remove apaga fisicamente das duas coleções. Existe só para o fluxo
	// legado de cancelamento pelo perfil do cliente.
	Remove(customerID string, appointmentID string) (*models.Appointment, error)
}

type Repository interface {
	// -------- Leitura (snapshots independentes) --------
	ListBarbers(ctx context.Context) ([]*models.Barber, error)

	GetBarberByID(
		ctx context.Context,
		id string,
	) (*models.Barber, error)

	ListCustomers(ctx context.Context) ([]*models.Customer, error)

	GetCustomerByID(
		ctx context.Context,
		id string,
	) (*models.Customer, error)

	// -------- Escrita (check-then-commit atômico) --------
	WithTx(ctx context.Context, fn func(tx Tx) error) error
}
