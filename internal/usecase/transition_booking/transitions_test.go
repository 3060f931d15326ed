package transition_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HSP-BookingService/internal/domain"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name        string
		from        domain.BookingStatus
		to          domain.BookingStatus
		allowReject bool
		want        bool
	}{
		{"pending to accepted", domain.StatusPending, domain.StatusAccepted, true, true},
		{"pending to rejected", domain.StatusPending, domain.StatusRejected, true, true},
		{"pending to completed", domain.StatusPending, domain.StatusCompleted, true, false},
		{"accepted to completed", domain.StatusAccepted, domain.StatusCompleted, true, true},
		{"accepted to rejected allowed", domain.StatusAccepted, domain.StatusRejected, true, true},
		{"accepted to rejected forbidden by policy", domain.StatusAccepted, domain.StatusRejected, false, false},
		{"no re-entry into pending", domain.StatusAccepted, domain.StatusPending, true, false},
		{"completed is terminal", domain.StatusCompleted, domain.StatusRejected, true, false},
		{"rejected is terminal", domain.StatusRejected, domain.StatusAccepted, true, false},
		{"same status retry pending", domain.StatusPending, domain.StatusPending, true, false},
		{"same status retry accepted", domain.StatusAccepted, domain.StatusAccepted, true, false},
		{"other is non-actionable", domain.StatusOther, domain.StatusAccepted, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canTransition(tt.from, tt.to, tt.allowReject))
		})
	}
}
