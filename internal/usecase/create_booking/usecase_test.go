package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/HSP-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/HSP-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/HSP-BookingService/internal/integrations/userservice"
	"github.com/m04kA/HSP-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	takenTimes []string
	takenErr   error
	createErr  error
	created    *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.created = b
	return b, nil
}

func (f *fakeBookingRepo) GetTakenTimes(_ context.Context, _ int64, _ time.Time) ([]string, error) {
	return f.takenTimes, f.takenErr
}

type fakeCatalog struct {
	service *catalogservice.Service
	err     error
}

func (f *fakeCatalog) GetService(context.Context, int64) (*catalogservice.Service, error) {
	return f.service, f.err
}

type fakeUsers struct {
	user *userservice.User
	err  error
}

func (f *fakeUsers) GetUser(context.Context, int64) (*userservice.User, error) {
	return f.user, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeBookingRepo, catalog *fakeCatalog, users *fakeUsers) *UseCase {
	uc := NewUseCase(repo, catalog, users, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{t: testNow}
	return uc
}

func activeService() *catalogservice.Service {
	return &catalogservice.Service{ID: 10, Name: "Сантехника", BasePrice: ptr.Ptr(1500.0), Active: true}
}

func TestExecute_HappyPath(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeCatalog{service: activeService()}, &fakeUsers{user: &userservice.User{ID: 1}})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 1500.0, resp.EstimatedPrice)
	assert.Equal(t, "Сантехника", resp.ServiceName)
	assert.Equal(t, domain.PaymentStatusUnpaid, resp.PaymentStatus)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
}

func TestExecute_SlotTakenOnPreCheck(t *testing.T) {
	repo := &fakeBookingRepo{takenTimes: []string{"10:00"}}
	uc := newTestUseCase(repo, &fakeCatalog{service: activeService()}, &fakeUsers{user: &userservice.User{ID: 1}})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, repo.created, "booking must not be created on conflict")
}

func TestExecute_TakenTimesAreTrimmed(t *testing.T) {
	// значения из хранилища могут приходить с пробелами
	repo := &fakeBookingRepo{takenTimes: []string{" 10:00 "}}
	uc := newTestUseCase(repo, &fakeCatalog{service: activeService()}, &fakeUsers{user: &userservice.User{ID: 1}})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_FreedSlotIsBookable(t *testing.T) {
	// отклонённые бронирования не возвращаются GetTakenTimes, слот свободен
	repo := &fakeBookingRepo{takenTimes: []string{"11:00"}}
	uc := newTestUseCase(repo, &fakeCatalog{service: activeService()}, &fakeUsers{user: &userservice.User{ID: 1}})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_SlotConflictOnInsert(t *testing.T) {
	// гонка: пре-чек прошёл, но конкурентная вставка успела первой
	repo := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, &fakeCatalog{service: activeService()}, &fakeUsers{user: &userservice.User{ID: 1}})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalog{err: catalogservice.ErrServiceNotFound}, &fakeUsers{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ServiceInactive(t *testing.T) {
	svc := activeService()
	svc.Active = false
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalog{service: svc}, &fakeUsers{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalog{service: activeService()}, &fakeUsers{err: userservice.ErrUserNotFound})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_NilPriceDefaultsToZero(t *testing.T) {
	svc := activeService()
	svc.BasePrice = nil
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalog{service: svc}, &fakeUsers{user: &userservice.User{ID: 1}})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.EstimatedPrice)
}
