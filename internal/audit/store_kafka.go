package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"kycnet/internal/platform/kafka/producer"
	"kycnet/internal/sentinel"
)

// MessageProducer is the slice of the Kafka producer the audit sink needs.
type MessageProducer interface {
	Produce(ctx context.Context, msg *producer.Message) error
}

// KafkaStore streams audit events to a Kafka topic. It is write-only:
// reading the trail back is a job for whatever consumes the topic.
type KafkaStore struct {
	producer MessageProducer
	topic    string
}

func NewKafkaStore(p MessageProducer, topic string) *KafkaStore {
	return &KafkaStore{producer: p, topic: topic}
}

func (s *KafkaStore) Append(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	msg := &producer.Message{
		Topic: s.topic,
		// Keyed by actor so one institution's events stay ordered per partition.
		Key:   []byte(event.Actor),
		Value: value,
		Headers: map[string]string{
			"kind": event.Kind,
		},
	}
	if err := s.producer.Produce(ctx, msg); err != nil {
		return fmt.Errorf("publish audit event: %w", err)
	}
	return nil
}

func (s *KafkaStore) ListByActor(context.Context, string) ([]Event, error) {
	return nil, fmt.Errorf("kafka audit store is write-only: %w", sentinel.ErrUnavailable)
}

var _ Store = (*KafkaStore)(nil)
