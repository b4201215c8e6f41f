package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumenquest/internal/notify"
)

type recordingDeliverer struct {
	got []notify.Message
	err error
}

func (r *recordingDeliverer) Deliver(_ context.Context, msg notify.Message) error {
	r.got = append(r.got, msg)
	return r.err
}

func entry(d Delivery) redis.XMessage {
	// Redis hands every field back as a string.
	values := make(map[string]any)
	for k, v := range d.Values() {
		values[k] = v.(string)
	}
	return redis.XMessage{ID: "1-0", Values: values}
}

func TestProcessorRoutesByChannel(t *testing.T) {
	email := &recordingDeliverer{}
	fallback := &recordingDeliverer{}
	p := NewProcessor(zerolog.Nop(), fallback)
	p.Route("email", email)

	d := Delivery{
		CampaignID: "c1",
		TemplateID: "t1",
		Channel:    "email",
		Audience:   "home-pro",
		Subject:    "Upgrade Offer",
		Body:       "Upgrade to Ultra Speed",
		To:         []string{"john.doe@email.com", "lisa.brown@email.com"},
		Recipients: 24680,
	}
	require.NoError(t, p.Handle(context.Background(), entry(d)))
	require.Len(t, email.got, 1)
	assert.Equal(t, d.Message(), email.got[0])
	assert.Empty(t, fallback.got)

	d.Channel = "sms"
	d.To = nil
	require.NoError(t, p.Handle(context.Background(), entry(d)))
	require.Len(t, fallback.got, 1)
	assert.Equal(t, 24680, fallback.got[0].Recipients)
	assert.Nil(t, fallback.got[0].To)
}

func TestProcessorPropagatesDeliveryErrors(t *testing.T) {
	failing := &recordingDeliverer{err: errors.New("provider down")}
	p := NewProcessor(zerolog.Nop(), failing)

	err := p.Handle(context.Background(), entry(Delivery{CampaignID: "c1", Channel: "push"}))
	assert.ErrorContains(t, err, "provider down")
}

func TestProcessorSkipsUnknownTasks(t *testing.T) {
	p := NewProcessor(zerolog.Nop(), &recordingDeliverer{})
	assert.NoError(t, p.Handle(context.Background(), redis.XMessage{Values: map[string]any{"type": "thumbnail"}}))
}

func TestProcessorAcksUndecodablePayload(t *testing.T) {
	fallback := &recordingDeliverer{}
	p := NewProcessor(zerolog.Nop(), fallback)

	incomplete := redis.XMessage{ID: "1-0", Values: map[string]any{"type": TypeCampaignDeliver}}
	assert.NoError(t, p.Handle(context.Background(), incomplete))

	badCount := entry(Delivery{CampaignID: "c1", Channel: "push"})
	badCount.Values["recipients"] = "many"
	assert.NoError(t, p.Handle(context.Background(), badCount))

	assert.Empty(t, fallback.got)
}

func TestProcessorAcksEmptyAudience(t *testing.T) {
	p := NewProcessor(zerolog.Nop(), &recordingDeliverer{err: notify.ErrNoRecipients})
	assert.NoError(t, p.Handle(context.Background(), entry(Delivery{CampaignID: "c1", Channel: "email"})))
}
