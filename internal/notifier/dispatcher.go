package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/HSP-BookingService/internal/integrations/notifyservice"
)

// Dispatcher асинхронная доставка уведомлений.
//
// Переход статуса ставит уведомление в очередь после фиксации транзакции и
// сразу возвращается: недоступность шины уведомлений не добавляет задержку
// запросу и не может быть принята за ошибку бизнес-операции. Отправка идёт в
// отдельной горутине с собственным таймаутом, ошибки только логируются.
type Dispatcher struct {
	sender  NotifySender
	log     Logger
	timeout time.Duration

	queue chan *notifyservice.Notification
	wg    sync.WaitGroup

	closeOnce sync.Once
}

// NewDispatcher создает диспетчер и запускает воркер доставки
func NewDispatcher(sender NotifySender, log Logger, queueSize int, timeout time.Duration) *Dispatcher {
	d := &Dispatcher{
		sender:  sender,
		log:     log,
		timeout: timeout,
		queue:   make(chan *notifyservice.Notification, queueSize),
	}

	d.wg.Add(1)
	go d.worker()

	return d
}

// Enqueue ставит уведомление в очередь доставки. Никогда не блокирует:
// при переполненной очереди уведомление отбрасывается с предупреждением.
func (d *Dispatcher) Enqueue(n *notifyservice.Notification) {
	select {
	case d.queue <- n:
	default:
		d.log.Warn("notifier: queue full, dropping notification: user=%d, booking=%s, status=%s",
			n.UserID, n.BookingID, n.Status)
	}
}

// Close останавливает приём и дожидается доставки оставшихся уведомлений
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for n := range d.queue {
		// Контекст намеренно не привязан к запросу: запрос уже завершён
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		err := d.sender.Send(ctx, n)
		cancel()

		if err != nil {
			d.log.Warn("notifier: failed to send notification: user=%d, booking=%s, status=%s, error=%v",
				n.UserID, n.BookingID, n.Status, err)
			continue
		}

		d.log.Info("notifier: notification sent: user=%d, booking=%s, status=%s",
			n.UserID, n.BookingID, n.Status)
	}
}
