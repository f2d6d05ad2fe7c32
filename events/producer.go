package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	TypeCreated       = "shipment.created"
	TypeStatusChanged = "shipment.status_changed"
	TypeDeleted       = "shipment.deleted"
)

// Event is the JSON body of every message on the shipment topic.
type Event struct {
	Type           string    `json:"event"`
	RequestID      uint      `json:"request_id"`
	RequestNumber  string    `json:"request_number"`
	Category       string    `json:"category"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	Actor          string    `json:"actor,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Writer is the subset of *kafka.Writer used here, so tests can swap it.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes shipment events. Without brokers or a topic it is a no-op.
type Producer struct {
	writer Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	if len(brokers) == 0 || topic == "" {
		return &Producer{}
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

func NewProducerWithWriter(w Writer) *Producer {
	return &Producer{writer: w}
}

func (p *Producer) Enabled() bool {
	return p != nil && p.writer != nil
}

// Publish writes ev keyed by request number so one request's events stay ordered.
func (p *Producer) Publish(ctx context.Context, ev Event) error {
	if !p.Enabled() {
		return nil
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.RequestNumber),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(ev.Type)},
		},
		Time: ev.OccurredAt,
	})
}

func (p *Producer) Close() error {
	if !p.Enabled() {
		return nil
	}
	return p.writer.Close()
}
