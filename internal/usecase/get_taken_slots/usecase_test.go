package get_taken_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	times []string
	err   error
}

func (f *fakeBookingRepo) GetTakenTimes(context.Context, int64, time.Time) ([]string, error) {
	return f.times, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestExecute_ReturnsNormalizedSet(t *testing.T) {
	repo := &fakeBookingRepo{times: []string{"11:00", " 10:00 ", "10:00", "", "  "}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00", "11:00"}, resp.Taken)
}

func TestExecute_EmptyDayYieldsEmptySet(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)

	assert.Empty(t, resp.Taken)
	assert.NotNil(t, resp.Taken, "empty day is an empty set, not an error")
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{err: errors.New("db down")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestNormalizeTakenTimes(t *testing.T) {
	assert.Equal(t, []string{"09:00", "10:00"}, normalizeTakenTimes([]string{"10:00", "09:00", "10:00"}))
	assert.Empty(t, normalizeTakenTimes(nil))
	assert.Empty(t, normalizeTakenTimes([]string{"", "   "}))
}
