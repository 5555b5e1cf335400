package events

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// MessageReader is the subset of *kafka.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads activity events from Kafka and dispatches them.
type Consumer struct {
	reader     MessageReader
	dispatcher *Dispatcher
}

func NewConsumer(cfg ConsumerConfig, dispatcher *Dispatcher) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		GroupID:     cfg.GroupID,
		Topic:       cfg.Topic,
		MinBytes:    1,
		MaxBytes:    10e6, // 10MB
		StartOffset: kafka.LastOffset,
	})

	return NewConsumerWithReader(reader, dispatcher)
}

func NewConsumerWithReader(reader MessageReader, dispatcher *Dispatcher) *Consumer {
	return &Consumer{
		reader:     reader,
		dispatcher: dispatcher,
	}
}

// Start consumes until ctx is cancelled. Malformed messages are logged and
// committed so they are not redelivered.
func (c *Consumer) Start(ctx context.Context) error {
	slog.Info("starting activity event consumer")

	for {
		message, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				slog.Info("stopping activity event consumer")
				return c.reader.Close()
			}
			slog.Error("failed to read activity event", "error", err)
			select {
			case <-ctx.Done():
				return c.reader.Close()
			case <-time.After(time.Second):
			}
			continue
		}

		c.processMessage(ctx, message)

		err = c.reader.CommitMessages(ctx, message)
		if err != nil && ctx.Err() == nil {
			slog.Error("failed to commit activity event", "error", err, "offset", message.Offset)
		}
	}
}

func (c *Consumer) processMessage(ctx context.Context, message kafka.Message) {
	event, err := Decode(message.Value)
	if err != nil {
		slog.Warn("skipping malformed activity event", "error", err, "offset", message.Offset, "partition", message.Partition)
		return
	}

	c.dispatcher.Dispatch(ctx, event)
}
