package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// LogDeliverer records a send instead of performing it. It stands in for
// channels without a provider integration.
type LogDeliverer struct {
	log zerolog.Logger
}

func NewLogDeliverer(log zerolog.Logger) *LogDeliverer {
	return &LogDeliverer{log: log}
}

func (d *LogDeliverer) Deliver(_ context.Context, msg Message) error {
	d.log.Info().
		Str("campaign_id", msg.CampaignID).
		Str("channel", msg.Channel).
		Str("audience", msg.Audience).
		Str("subject", msg.Subject).
		Int("recipients", msg.Recipients).
		Msg("campaign delivered")
	return nil
}
