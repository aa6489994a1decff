package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
)

var testMenu = []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00"}

func TestGetAvailability(t *testing.T) {
	repo := newTestRepo()
	bookUC := newBookUC(repo)
	uc := NewGetAvailability(repo, testMenu)

	mustBook(t, bookUC, "1", "userA", "2025-08-21", "10:00")

	slots, err := uc.Execute(context.Background(), "1", "2025-08-21")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00", "13:00", "14:00", "15:00", "16:00"}, slots)

	// Outro dia: menu inteiro.
	slots, err = uc.Execute(context.Background(), "1", "2025-08-22")
	require.NoError(t, err)
	assert.Equal(t, testMenu, slots)
}

func TestGetAvailability_InvalidDate(t *testing.T) {
	repo := newTestRepo()
	uc := NewGetAvailability(repo, testMenu)

	_, err := uc.Execute(context.Background(), "1", "21/08/2025")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidDateOrTime))
}

func TestListAppointmentsByDate_SortsAndTallies(t *testing.T) {
	repo := newTestRepo()
	bookUC := newBookUC(repo)
	transitionUC := newTransitionUC(repo)
	uc := NewListAppointmentsByDate(repo)

	first := mustBook(t, bookUC, "1", "userA", "2025-08-21", "14:00")
	mustBook(t, bookUC, "1", "userB", "2025-08-21", "09:00")

	_, err := transitionUC.Execute(context.Background(), "1", first.ID, domain.StatusCompleted)
	require.NoError(t, err)

	snap, err := uc.Execute(context.Background(), "1", "2025-08-21")
	require.NoError(t, err)

	require.Len(t, snap.Appointments, 2)
	assert.Equal(t, "09:00", snap.Appointments[0].Time)
	assert.Equal(t, "14:00", snap.Appointments[1].Time)

	assert.Equal(t, 1, snap.Tally[string(domain.StatusScheduled)])
	assert.Equal(t, 1, snap.Tally[string(domain.StatusCompleted)])
	assert.Equal(t, 0, snap.Tally[string(domain.StatusCanceled)])
}

func TestListCustomerAppointments_SplitsUpcomingAndPast(t *testing.T) {
	repo := newTestRepo()
	bookUC := newBookUC(repo)
	transitionUC := newTransitionUC(repo)
	uc := NewListCustomerAppointments(repo, "UTC").WithClock(fixedClock)

	// Concluído vai para o passado mesmo com horário futuro.
	done := mustBook(t, bookUC, "1", "userA", "2025-08-25", "10:00")
	_, err := transitionUC.Execute(context.Background(), "1", done.ID, domain.StatusCompleted)
	require.NoError(t, err)

	upcoming := mustBook(t, bookUC, "2", "userA", "2025-08-21", "11:00")

	hist, err := uc.Execute(context.Background(), "userA")
	require.NoError(t, err)

	require.Len(t, hist.Upcoming, 1)
	assert.Equal(t, upcoming.ID, hist.Upcoming[0].ID)

	require.Len(t, hist.Past, 1)
	assert.Equal(t, done.ID, hist.Past[0].ID)
}

func TestListCustomerAppointments_UnknownCustomer(t *testing.T) {
	repo := newTestRepo()
	uc := NewListCustomerAppointments(repo, "UTC").WithClock(fixedClock)

	_, err := uc.Execute(context.Background(), "ghost")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeCustomerNotFound))
}
