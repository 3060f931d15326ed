package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HSP-BookingService/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusCompleted BookingStatus = "completed"
	StatusRejected  BookingStatus = "rejected"

	// StatusOther is assigned to unrecognized stored values. It is
	// non-terminal but non-actionable: no transition in or out succeeds,
	// and the booking keeps holding its slot.
	StatusOther BookingStatus = "other"
)

// NormalizeStatus maps a raw status string to the canonical enum.
// Legacy cancellation aliases ("cancelled", "canceled", any case) map to
// StatusRejected so that alias handling happens once, at the boundary.
func NormalizeStatus(raw string) BookingStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending
	case "accepted":
		return StatusAccepted
	case "completed":
		return StatusCompleted
	case "rejected", "cancelled", "canceled":
		return StatusRejected
	default:
		return StatusOther
	}
}

// IsTerminal returns true if no further transitions are permitted
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// HoldsSlot returns true if a booking in this status reserves its time slot.
// Rejected (and legacy cancelled) bookings free the slot immediately.
func (s BookingStatus) HoldsSlot() bool {
	return NormalizeStatus(string(s)) != StatusRejected
}

// Booking represents a customer request for a home service at a specific
// date and time slot, tracked through a status lifecycle
type Booking struct {
	ID         uuid.UUID
	ServiceID  int64
	CustomerID int64
	AssignedTo *int64 // worker id, set iff the booking has passed through accepted
	Status     BookingStatus

	BookingDate time.Time
	StartTime   types.TimeString
	Address     string

	EstimatedPrice float64
	PaymentMethod  string
	PaymentStatus  string

	// Populated on reject. RejectionReason and CancelReason carry the same
	// value; both columns are kept for older readers.
	RejectionReason *string
	CancelReason    *string
	RejectedAt      *time.Time

	// Populated on complete
	CompletionPhotos []CompletionPhoto
	CompletedAt      *time.Time

	// Written by the review flow after completion; never touched by the lifecycle
	Rating *int
	Review *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still holds its slot
func (b *Booking) IsActive() bool {
	return b.Status.HoldsSlot()
}

// CompletionPhoto a normalized photo attached on the completed transition
type CompletionPhoto struct {
	Content     []byte
	ContentType string
	Filename    *string
	Size        int64
	UploadedAt  time.Time
}

// StatusUpdate the field set applied atomically together with a status change
type StatusUpdate struct {
	Status          BookingStatus
	AssignedTo      *int64
	RejectionReason *string
	CancelReason    *string
	RejectedAt      *time.Time
	CompletedAt     *time.Time
	UpdatedAt       time.Time
}

// BookingsFilter filter for booking listings; nil fields are not applied
type BookingsFilter struct {
	Status     *BookingStatus
	AssignedTo *int64
	ServiceID  *int64
	Date       *time.Time
	StartTime  *types.TimeString
}
