package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-core/internal/audit"
	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/infra/repository"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

var seedNow = time.Date(2025, 8, 20, 8, 0, 0, 0, time.UTC)

func newSeedEnv(customerIDs ...string) (*repository.AppointmentMemoryRepository, *Seeder) {
	repo := repository.NewAppointmentMemoryRepository()
	repo.PutBarber(&models.Barber{ID: "5", Name: "Andre"})
	repo.PutBarber(&models.Barber{ID: "6", Name: "Carly"})
	for _, id := range customerIDs {
		repo.PutCustomer(&models.Customer{ID: id, Name: id})
	}

	seeder := NewSeeder(repo, audit.NewDispatcher(audit.New()), "UTC").
		WithClock(func() time.Time { return seedNow })
	return repo, seeder
}

func TestEnsureDay_IsIdempotent(t *testing.T) {
	repo, seeder := newSeedEnv("user1", "user2", "user3")

	in := EnsureDayInput{
		BarberID: "5",
		Date:     "2025-09-01",
		Start:    "09:00",
		Interval: 60,
		Slots:    8,
	}

	created, err := seeder.EnsureDay(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 8, created)

	// Segunda execução: nada novo.
	created, err = seeder.EnsureDay(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	barber, err := repo.GetBarberByID(context.Background(), "5")
	require.NoError(t, err)
	require.Len(t, barber.Appointments, 8)

	ids := make(map[string]struct{})
	times := make(map[string]struct{})
	for _, ap := range barber.Appointments {
		ids[ap.ID] = struct{}{}
		times[ap.Time] = struct{}{}
	}
	assert.Len(t, ids, 8)
	assert.Len(t, times, 8)
}

func TestEnsureDay_DeterministicIDs(t *testing.T) {
	repo, seeder := newSeedEnv("user1")

	_, err := seeder.EnsureDay(context.Background(), EnsureDayInput{
		BarberID: "5",
		Date:     "2025-10-16",
		Start:    "09:00",
		Interval: 60,
		Slots:    2,
	})
	require.NoError(t, err)

	barber, err := repo.GetBarberByID(context.Background(), "5")
	require.NoError(t, err)
	require.Len(t, barber.Appointments, 2)
	assert.Equal(t, "b5-2025-10-16-09:00", barber.Appointments[0].ID)
	assert.Equal(t, "b5-2025-10-16-10:00", barber.Appointments[1].ID)
}

func TestEnsureDay_MirrorsToCustomers(t *testing.T) {
	repo, seeder := newSeedEnv("user1", "user2")

	_, err := seeder.EnsureDay(context.Background(), EnsureDayInput{
		BarberID: "5",
		Date:     "2025-09-01",
		Slots:    4,
	})
	require.NoError(t, err)

	customers, err := repo.ListCustomers(context.Background())
	require.NoError(t, err)

	mirrored := 0
	for _, c := range customers {
		mirrored += len(c.Appointments)
	}
	assert.Equal(t, 4, mirrored)
}

func TestEnsureDay_SkipsCustomersBusyAtSlot(t *testing.T) {
	repo, seeder := newSeedEnv("user1", "user2", "user3")

	ctx := context.Background()

	_, err := seeder.EnsureDay(ctx, EnsureDayInput{
		BarberID: "5",
		Date:     "2025-09-01",
		Slots:    6,
	})
	require.NoError(t, err)

	// Mesmo dia com outro barbeiro: ninguém pode ficar com dois
	// scheduled no mesmo (data,hora).
	_, err = seeder.EnsureDay(ctx, EnsureDayInput{
		BarberID: "6",
		Date:     "2025-09-01",
		Slots:    6,
	})
	require.NoError(t, err)

	customers, err := repo.ListCustomers(ctx)
	require.NoError(t, err)

	for _, c := range customers {
		seen := make(map[string]struct{})
		for _, ap := range c.Appointments {
			if ap.Status != string(domain.StatusScheduled) {
				continue
			}
			key := ap.Date + " " + ap.Time
			_, dup := seen[key]
			assert.False(t, dup, "cliente %s duplicado em %s", c.ID, key)
			seen[key] = struct{}{}
		}
	}
}

func TestEnsureDay_FallsBackWhenEveryoneBusy(t *testing.T) {
	_, seeder := newSeedEnv("user1")

	ctx := context.Background()

	_, err := seeder.EnsureDay(ctx, EnsureDayInput{
		BarberID: "5",
		Date:     "2025-09-01",
		Slots:    3,
	})
	require.NoError(t, err)

	// Único cliente já ocupado em todos os horários: dado de demo segue
	// mesmo assim (rodízio força a atribuição).
	created, err := seeder.EnsureDay(ctx, EnsureDayInput{
		BarberID: "6",
		Date:     "2025-09-01",
		Slots:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, created)
}

func TestEnsureDay_UnknownBarber(t *testing.T) {
	_, seeder := newSeedEnv("user1")

	_, err := seeder.EnsureDay(context.Background(), EnsureDayInput{
		BarberID: "99",
		Date:     "2025-09-01",
	})
	assert.Error(t, err)
}

func TestEnsureDay_ExplicitPoolRoundRobin(t *testing.T) {
	repo, seeder := newSeedEnv("user1", "user2", "user3")

	_, err := seeder.EnsureDay(context.Background(), EnsureDayInput{
		BarberID:     "5",
		Date:         "2025-09-01",
		Slots:        4,
		CustomerPool: []string{"user1", "user2"},
	})
	require.NoError(t, err)

	barber, err := repo.GetBarberByID(context.Background(), "5")
	require.NoError(t, err)
	require.Len(t, barber.Appointments, 4)

	assert.Equal(t, "user1", barber.Appointments[0].CustomerID)
	assert.Equal(t, "user2", barber.Appointments[1].CustomerID)
	assert.Equal(t, "user1", barber.Appointments[2].CustomerID)
	assert.Equal(t, "user2", barber.Appointments[3].CustomerID)
}
