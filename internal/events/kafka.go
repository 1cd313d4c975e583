package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokerAddress, topic string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokerAddress),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Error().Err(err).Int("messages", len(messages)).Str("component", "KafkaPublisher").Msg("event delivery failed")
			}
		},
	}
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, key, eventType string, data any) {
	msg, err := json.Marshal(Message{EventType: eventType, Data: data, OccurredAt: time.Now().UTC()})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("event", eventType).Msg("event encode failed")
		return
	}
	// the request context ends before an async batch is flushed
	if err := p.writer.WriteMessages(context.WithoutCancel(ctx), kafka.Message{Key: []byte(key), Value: msg}); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("event", eventType).Msg("event publish failed")
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
