package notify

import (
	"context"
	"log"
	"sync"
	"time"
)

// Deliverer pushes a single notification to the delivery channel.
type Deliverer interface {
	Deliver(ctx context.Context, n Notification) error
}

// Dispatcher fans notifications out to worker goroutines so that lifecycle
// operations never wait on delivery.
type Dispatcher struct {
	queue     chan Notification
	wg        sync.WaitGroup
	deliverer Deliverer
}

func NewDispatcher(deliverer Deliverer, workers, queueSize int) *Dispatcher {
	d := &Dispatcher{
		queue:     make(chan Notification, queueSize),
		deliverer: deliverer,
	}

	for i := 1; i <= workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}

	return d
}

// Notify enqueues without blocking. A saturated queue drops the event with a
// log line; the triggering operation has already committed.
func (d *Dispatcher) Notify(n Notification) {
	if n.SentAt.IsZero() {
		n.SentAt = time.Now().UTC()
	}

	select {
	case d.queue <- n:
	default:
		log.Printf("notify: queue full, dropping %s for recipient %s", n.Type, n.RecipientID)
	}
}

func (d *Dispatcher) worker(workerID int) {
	defer d.wg.Done()

	for n := range d.queue {
		if err := d.deliverer.Deliver(context.Background(), n); err != nil {
			log.Printf("notify worker %d: failed to deliver %s to %s: %v", workerID, n.Type, n.RecipientID, err)
		}
	}
}

func (d *Dispatcher) Shutdown(ctx context.Context) {
	close(d.queue)

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Println("notify: dispatcher shutdown timed out")
	}
}
