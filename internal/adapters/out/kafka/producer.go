// Package kafka implements the outbound messaging adapters over Apache Kafka.
// The producer serializes messages to JSON and publishes them asynchronously;
// delivery outcomes are reported through callbacks so saga publishers can log
// failures without blocking the request path.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer publishes JSON messages to Kafka topics. Writers are created
// lazily per topic and reused; Producer is safe for concurrent use.
type Producer struct {
	brokers []string
	logger  *slog.Logger

	mu      sync.Mutex
	writers map[string]*kafka.Writer
}

// NewProducer creates a producer publishing to the given brokers.
func NewProducer(brokers []string, logger *slog.Logger) *Producer {
	return &Producer{
		brokers: brokers,
		logger:  logger,
		writers: make(map[string]*kafka.Writer),
	}
}

// Publish serializes the message to JSON and enqueues it for delivery.
// The call returns once serialization succeeds; onResult is invoked from a
// separate goroutine with the delivery outcome. The message key routes all
// messages of one order to the same partition, preserving per-order order.
func (p *Producer) Publish(ctx context.Context, topic, key string, message any, onResult func(error)) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	writer := p.writer(topic)

	// Delivery must outlive the request that triggered it.
	deliveryCtx := context.WithoutCancel(ctx)
	go func() {
		writeErr := writer.WriteMessages(deliveryCtx, kafka.Message{
			Key:   []byte(key),
			Value: data,
			Time:  time.Now().UTC(),
		})
		if onResult != nil {
			onResult(writeErr)
		}
	}()

	return nil
}

// Close releases all topic writers.
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, writer := range p.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.writers, topic)
	}
	return firstErr
}

func (p *Producer) writer(topic string) *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if writer, ok := p.writers[topic]; ok {
		return writer
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(p.brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	p.writers[topic] = writer
	return writer
}
