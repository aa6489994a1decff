package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
)

func TestTransition_UpdatesBothCollections(t *testing.T) {
	repo := newTestRepo()
	bookUC := newBookUC(repo)
	uc := newTransitionUC(repo)

	booked := mustBook(t, bookUC, "1", "userA", "2025-08-21", "10:00")

	updated, err := uc.Execute(context.Background(), "1", booked.ID, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), updated.Status)
	require.NotNil(t, updated.CompletedAt)

	ctx := context.Background()
	barber, err := repo.GetBarberByID(ctx, "1")
	require.NoError(t, err)
	customer, err := repo.GetCustomerByID(ctx, "userA")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), barber.Appointments[0].Status)
	assert.Equal(t, string(domain.StatusCompleted), customer.Appointments[0].Status)
}

func TestTransition_TerminalIsForever(t *testing.T) {
	repo := newTestRepo()
	bookUC := newBookUC(repo)
	uc := newTransitionUC(repo)

	booked := mustBook(t, bookUC, "1", "userA", "2025-08-21", "10:00")

	_, err := uc.Execute(context.Background(), "1", booked.ID, domain.StatusCompleted)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), "1", booked.ID, domain.StatusNoShow)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))

	// O status gravado continua completed nos dois lados.
	barber, err := repo.GetBarberByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), barber.Appointments[0].Status)

	customer, err := repo.GetCustomerByID(context.Background(), "userA")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), customer.Appointments[0].Status)
}

func TestTransition_BackToScheduledUnsupported(t *testing.T) {
	repo := newTestRepo()
	bookUC := newBookUC(repo)
	uc := newTransitionUC(repo)

	booked := mustBook(t, bookUC, "1", "userA", "2025-08-21", "10:00")

	_, err := uc.Execute(context.Background(), "1", booked.ID, domain.StatusScheduled)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestTransition_UnknownAppointment(t *testing.T) {
	repo := newTestRepo()
	uc := newTransitionUC(repo)

	_, err := uc.Execute(context.Background(), "1", "ghost", domain.StatusCanceled)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
}

func TestTransition_WrongBarber(t *testing.T) {
	repo := newTestRepo()
	bookUC := newBookUC(repo)
	uc := newTransitionUC(repo)

	booked := mustBook(t, bookUC, "1", "userA", "2025-08-21", "10:00")

	// O id existe, mas na agenda de outro barbeiro.
	_, err := uc.Execute(context.Background(), "2", booked.ID, domain.StatusCanceled)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
}
