package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"scheduled", "completed", "cancelled"} {
		status, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, Status(valid), status)
	}

	_, err := ParseStatus("archived")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	_, err = ParseStatus("")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestNewScheduled(t *testing.T) {
	slot := time.Date(2026, 9, 10, 14, 25, 0, 0, time.UTC)

	ap := NewScheduled(7, slot, "primeira visita")

	assert.Equal(t, uint(7), ap.CustomerID)
	assert.Equal(t, string(StatusScheduled), ap.Status)
	assert.Equal(t, "primeira visita", ap.Notes)
	// slot sai normalizado para a hora cheia
	assert.Equal(t, time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC), ap.Slot)
}

func TestCancelIsUnconditional(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	for _, from := range []Status{StatusScheduled, StatusCompleted, StatusCancelled} {
		ap := NewScheduled(1, now, "")
		ap.Status = string(from)

		Cancel(ap, now)

		assert.Equal(t, string(StatusCancelled), ap.Status)
		assert.Equal(t, now, ap.UpdatedAt)
	}
}

func TestCompleteRequiresScheduled(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	ap := NewScheduled(1, now, "")
	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)

	err := Complete(ap, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	cancelled := NewScheduled(1, now, "")
	Cancel(cancelled, now)
	err = Complete(cancelled, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
