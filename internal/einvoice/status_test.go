package einvoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusQueued, StatusSubmitted, StatusSuccess, StatusFailed, StatusCancelled} {
		assert.True(t, s.Valid(), "expected %s to be valid", s)
	}
	assert.False(t, Status("").Valid())
	assert.False(t, Status("draft").Valid())
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"pending to queued", StatusPending, StatusQueued, true},
		{"pending directly to submitted", StatusPending, StatusSubmitted, true},
		{"queued to submitted", StatusQueued, StatusSubmitted, true},
		{"submitted to success", StatusSubmitted, StatusSuccess, true},
		{"submitted to failed", StatusSubmitted, StatusFailed, true},
		{"failed resubmission", StatusFailed, StatusSubmitted, true},
		{"failed requeue", StatusFailed, StatusQueued, true},
		{"success to cancelled", StatusSuccess, StatusCancelled, true},
		{"cancelled is terminal", StatusCancelled, StatusSuccess, false},
		{"cancelled cannot resubmit", StatusCancelled, StatusSubmitted, false},
		{"success cannot regress", StatusSuccess, StatusPending, false},
		{"success cannot resubmit", StatusSuccess, StatusSubmitted, false},
		{"pending cannot jump to success", StatusPending, StatusSuccess, false},
		{"queued cannot cancel", StatusQueued, StatusCancelled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCheckTransition(t *testing.T) {
	assert.NoError(t, CheckTransition(StatusPending, StatusQueued))

	err := CheckTransition(StatusCancelled, StatusSuccess)
	assert.ErrorContains(t, err, "illegal status transition")

	err = CheckTransition(Status("draft"), StatusQueued)
	assert.ErrorContains(t, err, "unknown invoice status")
}
