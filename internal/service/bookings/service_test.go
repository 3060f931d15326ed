package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/HSP-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/HSP-BookingService/internal/service/bookings/models"
	"github.com/m04kA/HSP-BookingService/pkg/ptr"
	"github.com/m04kA/HSP-BookingService/pkg/types"
)

type fakeReadRepo struct {
	byID       map[uuid.UUID]*domain.Booking
	byCustomer map[int64][]*domain.Booking
	listResult []*domain.Booking
	lastFilter domain.BookingsFilter
	err        error
}

func (f *fakeReadRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	booking, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeReadRepo) GetByCustomerID(_ context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Booking, 0)
	for _, b := range f.byCustomer[customerID] {
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeReadRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastFilter = filter
	return f.listResult, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleBooking(customerID int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            uuid.New(),
		ServiceID:     10,
		CustomerID:    customerID,
		Status:        status,
		BookingDate:   time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("10:00"),
		Address:       "ул. Ленина, 1",
		PaymentMethod: "cash",
		PaymentStatus: domain.PaymentStatusUnpaid,
	}
}

func TestService_GetByID(t *testing.T) {
	booking := sampleBooking(42, domain.StatusCompleted)
	booking.CompletedAt = ptr.Ptr(time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC))
	booking.CompletionPhotos = []domain.CompletionPhoto{
		{Content: []byte("x"), ContentType: "image/png", Size: 1, UploadedAt: time.Now()},
	}
	repo := &fakeReadRepo{byID: map[uuid.UUID]*domain.Booking{booking.ID: booking}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), booking.ID)

	require.NoError(t, err)
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "completed", resp.Status)
	// Только метаданные фотографий, без содержимого
	require.Len(t, resp.CompletionPhotos, 1)
	assert.Equal(t, "image/png", resp.CompletionPhotos[0].ContentType)
	require.NotNil(t, resp.CompletedAt)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := &fakeReadRepo{byID: map[uuid.UUID]*domain.Booking{}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetUserBookings(t *testing.T) {
	repo := &fakeReadRepo{byCustomer: map[int64][]*domain.Booking{
		42: {
			sampleBooking(42, domain.StatusPending),
			sampleBooking(42, domain.StatusRejected),
		},
	}}
	svc := NewService(repo, nopLogger{})

	t.Run("all statuses", func(t *testing.T) {
		resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 42})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 2)
	})

	t.Run("filter by status with cancelled alias", func(t *testing.T) {
		resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
			UserID: 42,
			Status: ptr.Ptr("cancelled"),
		})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "rejected", resp.Bookings[0].Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
			UserID: 42,
			Status: ptr.Ptr("archived"),
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("invalid user id", func(t *testing.T) {
		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty history is empty list", func(t *testing.T) {
		resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 99})
		require.NoError(t, err)
		assert.NotNil(t, resp.Bookings)
		assert.Empty(t, resp.Bookings)
	})
}

func TestService_List(t *testing.T) {
	repo := &fakeReadRepo{listResult: []*domain.Booking{sampleBooking(42, domain.StatusPending)}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		ServiceID: ptr.Ptr(int64(10)),
		Status:    ptr.Ptr("pending"),
		Date:      ptr.Ptr("2024-06-03"),
		StartTime: ptr.Ptr("10:00"),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusPending, *repo.lastFilter.Status)
	require.NotNil(t, repo.lastFilter.Date)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), *repo.lastFilter.Date)
	require.NotNil(t, repo.lastFilter.StartTime)
	assert.Equal(t, types.TimeString("10:00"), *repo.lastFilter.StartTime)
}

func TestService_List_InvalidFilter(t *testing.T) {
	svc := NewService(&fakeReadRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Date: ptr.Ptr("03.06.2024")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListBookingsRequest{StartTime: ptr.Ptr("25:99")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List_RepoError(t *testing.T) {
	svc := NewService(&fakeReadRepo{err: errors.New("boom")}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}
