package analytics

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer emits engine decision events to Kafka. A nil Producer is a valid
// no-op, so callers never need to branch on analytics being configured.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers, topic string) *Producer {
	if brokers == "" {
		return nil
	}
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{writer: w}
}

// Emit sends an event fire-and-forget. Failures are logged, never surfaced:
// analytics must not affect gameplay.
func (p *Producer) Emit(event string, payload map[string]any) {
	if p == nil || p.writer == nil {
		return
	}
	payload["event"] = event
	payload["ts"] = time.Now().UTC()
	b, err := json.Marshal(payload)
	if err != nil {
		log.Println("[KAFKA] marshal err:", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, kafka.Message{Value: b}); err != nil {
		log.Println("[KAFKA] emit err:", err)
	}
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
