package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"logistics-requests/events"
	"logistics-requests/logger"
	shipmentModel "logistics-requests/models/shipment"
)

const DefaultTimeout = 10 * time.Second

// MessageSender is the Telegram side of the dispatcher.
type MessageSender interface {
	Enabled() bool
	SendMessage(ctx context.Context, text string) error
}

// EventPublisher is the Kafka side of the dispatcher.
type EventPublisher interface {
	Enabled() bool
	Publish(ctx context.Context, ev events.Event) error
}

// Dispatcher fans lifecycle events out to Telegram and Kafka in the
// background. Failures are logged and never reach the caller.
type Dispatcher struct {
	messages  MessageSender
	publisher EventPublisher
	timeout   time.Duration
	now       func() time.Time

	wg sync.WaitGroup
}

func NewDispatcher(messages MessageSender, publisher EventPublisher) *Dispatcher {
	return &Dispatcher{
		messages:  messages,
		publisher: publisher,
		timeout:   DefaultTimeout,
		now:       time.Now,
	}
}

func (d *Dispatcher) RequestCreated(ctx context.Context, r *shipmentModel.ShipmentRequest) {
	d.dispatch(ctx, formatCreated(r), d.event(events.TypeCreated, r, "", ""))
}

func (d *Dispatcher) StatusChanged(ctx context.Context, r *shipmentModel.ShipmentRequest, from, to shipmentModel.Status, changedBy string) {
	d.dispatch(ctx, formatStatusChanged(r, from, to, changedBy), d.event(events.TypeStatusChanged, r, string(from), changedBy))
}

func (d *Dispatcher) RequestDeleted(ctx context.Context, r *shipmentModel.ShipmentRequest, deletedBy string) {
	d.dispatch(ctx, formatDeleted(r, deletedBy), d.event(events.TypeDeleted, r, "", deletedBy))
}

func (d *Dispatcher) event(kind string, r *shipmentModel.ShipmentRequest, previous, actor string) events.Event {
	return events.Event{
		Type:           kind,
		RequestID:      r.ID,
		RequestNumber:  r.RequestNumber,
		Category:       string(r.Category),
		Status:         string(r.Status),
		PreviousStatus: previous,
		Actor:          actor,
		OccurredAt:     d.now(),
	}
}

// dispatch builds everything from r up front; the goroutine only sees copies.
func (d *Dispatcher) dispatch(ctx context.Context, text string, ev events.Event) {
	sendTelegram := d.messages != nil && d.messages.Enabled()
	publish := d.publisher != nil && d.publisher.Enabled()
	if !sendTelegram && !publish {
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("notification panic", fmt.Errorf("%v", rec))
			}
		}()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		if sendTelegram {
			if err := d.messages.SendMessage(ctx, text); err != nil {
				logger.Error(fmt.Sprintf("telegram notification for %s failed", ev.RequestNumber), err)
			}
		}
		if publish {
			if err := d.publisher.Publish(ctx, ev); err != nil {
				logger.Error(fmt.Sprintf("kafka event %s for %s failed", ev.Type, ev.RequestNumber), err)
			}
		}
	}()
}

// Wait blocks until in-flight notifications finish or ctx expires.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
