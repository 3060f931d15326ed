package notifier

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HSP-BookingService/internal/integrations/notifyservice"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []*notifyservice.Notification
	err  error
}

func (f *fakeSender) Send(_ context.Context, n *notifyservice.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, n)
	return nil
}

func (f *fakeSender) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestDispatcher_Delivers(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, nopLogger{}, 10, time.Second)

	d.Enqueue(&notifyservice.Notification{UserID: 1, BookingID: "b1", Status: "accepted"})
	d.Enqueue(&notifyservice.Notification{UserID: 2, BookingID: "b1", Status: "accepted"})
	d.Close()

	assert.Equal(t, 2, sender.sentCount())
}

func TestDispatcher_SendFailureIsSwallowed(t *testing.T) {
	sender := &fakeSender{err: errors.New("sink down")}
	d := NewDispatcher(sender, nopLogger{}, 10, time.Second)

	// не должно ни паниковать, ни блокировать
	d.Enqueue(&notifyservice.Notification{UserID: 1, BookingID: "b1", Status: "rejected"})
	d.Close()

	assert.Equal(t, 0, sender.sentCount())
}

func TestDispatcher_EnqueueNeverBlocks(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, nopLogger{}, 1, time.Second)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			d.Enqueue(&notifyservice.Notification{UserID: int64(i), BookingID: "b", Status: "accepted"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}

	d.Close()
}
