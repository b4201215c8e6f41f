package queue

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type Task interface {
	Values() map[string]any
}

// Producer appends tasks to a redis stream.
type Producer struct {
	client *redis.Client
	stream string
}

func NewProducer(client *redis.Client, stream string) *Producer {
	return &Producer{client: client, stream: stream}
}

func (p *Producer) Enqueue(ctx context.Context, task Task) error {
	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: task.Values(),
	}).Err(); err != nil {
		return fmt.Errorf("xadd %s: %w", p.stream, err)
	}
	return nil
}

// Inline hands tasks straight to a handler in the calling goroutine. It
// replaces the stream when no redis server is configured.
type Inline struct {
	handler MessageHandler
}

func NewInline(handler MessageHandler) *Inline {
	return &Inline{handler: handler}
}

func (q *Inline) Enqueue(ctx context.Context, task Task) error {
	values := make(map[string]any)
	for k, v := range task.Values() {
		values[k] = fmt.Sprint(v)
	}
	return q.handler.Handle(ctx, redis.XMessage{Values: values})
}
