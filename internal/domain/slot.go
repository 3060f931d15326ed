package domain

import "github.com/m04kA/HSP-BookingService/pkg/types"

// ServiceDaySlots returns the fixed grid of bookable time slots:
// on-the-hour times within the service window. Availability is a read-time
// projection over bookings, not a stored table; this grid is the full set
// a taken-slot set is subtracted from.
func ServiceDaySlots() []types.TimeString {
	slots := make([]types.TimeString, 0)

	current := types.TimeString(ServiceDayOpen)
	close := types.TimeString(ServiceDayClose)

	for !current.IsAfter(close) {
		slots = append(slots, current)

		next, err := current.AddMinutes(SlotStepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return slots
}

// IsValidSlot returns true if t is one of the bookable grid slots
func IsValidSlot(t types.TimeString) bool {
	for _, slot := range ServiceDaySlots() {
		if slot == t {
			return true
		}
	}
	return false
}
