package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, 5, 30, 12, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		CustomerID:    1,
		ServiceID:     10,
		Date:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		Address:       "ул. Ленина, 1",
		PaymentMethod: "cash",
	}
}

func TestValidateRequest_OK(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest(), testNow))
}

func TestValidateRequest_MissingIDs(t *testing.T) {
	req := validRequest()
	req.CustomerID = 0
	assert.ErrorIs(t, validateRequest(req, testNow), ErrInvalidInput)

	req = validRequest()
	req.ServiceID = -5
	assert.ErrorIs(t, validateRequest(req, testNow), ErrInvalidInput)
}

func TestValidateRequest_Date(t *testing.T) {
	req := validRequest()
	req.Date = time.Time{}
	assert.ErrorIs(t, validateRequest(req, testNow), ErrInvalidInput)

	req = validRequest()
	req.Date = time.Date(2024, 5, 29, 0, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, validateRequest(req, testNow), ErrInvalidDate)

	// сегодня - допустимо
	req = validRequest()
	req.Date = time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, validateRequest(req, testNow))
}

func TestValidateRequest_StartTime(t *testing.T) {
	req := validRequest()
	req.StartTime = ""
	assert.ErrorIs(t, validateRequest(req, testNow), ErrInvalidInput)

	req = validRequest()
	req.StartTime = "25:99"
	assert.ErrorIs(t, validateRequest(req, testNow), ErrInvalidInput)

	// корректный формат, но вне сетки слотов
	req = validRequest()
	req.StartTime = "10:30"
	assert.ErrorIs(t, validateRequest(req, testNow), ErrInvalidSlot)

	req = validRequest()
	req.StartTime = "08:00"
	assert.ErrorIs(t, validateRequest(req, testNow), ErrInvalidSlot)
}

func TestValidateRequest_Address(t *testing.T) {
	req := validRequest()
	req.Address = "   "
	assert.ErrorIs(t, validateRequest(req, testNow), ErrInvalidInput)
}
