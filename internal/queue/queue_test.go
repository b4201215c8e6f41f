package queue

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerFunc func(ctx context.Context, msg redis.XMessage) error

func (f handlerFunc) Handle(ctx context.Context, msg redis.XMessage) error { return f(ctx, msg) }

type staticTask map[string]any

func (t staticTask) Values() map[string]any { return t }

func TestInlineStringifiesValues(t *testing.T) {
	var got redis.XMessage
	q := NewInline(handlerFunc(func(_ context.Context, msg redis.XMessage) error {
		got = msg
		return nil
	}))

	require.NoError(t, q.Enqueue(context.Background(), staticTask{"type": "campaign.deliver", "recipients": 12}))
	assert.Equal(t, "campaign.deliver", got.Values["type"])
	assert.Equal(t, "12", got.Values["recipients"])
}
