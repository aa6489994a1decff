package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-core/internal/httperr"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		current Status
		next    Status
		ok      bool
	}{
		{"scheduled para completed", StatusScheduled, StatusCompleted, true},
		{"scheduled para canceled", StatusScheduled, StatusCanceled, true},
		{"scheduled para no_show", StatusScheduled, StatusNoShow, true},
		{"scheduled para scheduled", StatusScheduled, StatusScheduled, false},
		{"terminal nunca volta", StatusCompleted, StatusCanceled, false},
		{"terminal nao re-transiciona", StatusCanceled, StatusNoShow, false},
		{"status desconhecido", StatusScheduled, Status("rescheduled"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.current, tc.next)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
		})
	}
}

func TestApplyStatus_StampsTimestamps(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

	ap := appt("a", "2025-08-21", "10:00", string(StatusScheduled))
	require.NoError(t, ApplyStatus(ap, StatusCanceled, now))
	assert.Equal(t, string(StatusCanceled), ap.Status)
	require.NotNil(t, ap.CanceledAt)
	assert.Equal(t, now, *ap.CanceledAt)

	ap = appt("b", "2025-08-21", "10:00", string(StatusScheduled))
	require.NoError(t, ApplyStatus(ap, StatusCompleted, now))
	require.NotNil(t, ap.CompletedAt)

	// terminal é para sempre
	err := ApplyStatus(ap, StatusNoShow, now)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
	assert.Equal(t, string(StatusCompleted), ap.Status)
}
