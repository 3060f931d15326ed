package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HSP-BookingService/pkg/types"
)

func TestServiceDaySlots(t *testing.T) {
	slots := ServiceDaySlots()

	assert.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString(ServiceDayOpen), slots[0])
	assert.Equal(t, types.TimeString(ServiceDayClose), slots[len(slots)-1])

	// on-the-hour grid: 09:00 .. 18:00 inclusive
	assert.Len(t, slots, 10)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]), "slots must be strictly increasing")
	}
}

func TestIsValidSlot(t *testing.T) {
	assert.True(t, IsValidSlot("09:00"))
	assert.True(t, IsValidSlot("18:00"))
	assert.False(t, IsValidSlot("08:00"))
	assert.False(t, IsValidSlot("19:00"))
	assert.False(t, IsValidSlot("10:30"))
	assert.False(t, IsValidSlot(""))
}
