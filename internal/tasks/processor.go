package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"lumenquest/internal/notify"
)

// Processor routes stream entries to the deliverer of their channel.
type Processor struct {
	logger     zerolog.Logger
	deliverers map[string]notify.Deliverer
	fallback   notify.Deliverer
}

// NewProcessor uses fallback for channels without a dedicated deliverer.
func NewProcessor(logger zerolog.Logger, fallback notify.Deliverer) *Processor {
	return &Processor{
		logger:     logger,
		deliverers: make(map[string]notify.Deliverer),
		fallback:   fallback,
	}
}

func (p *Processor) Route(channel string, d notify.Deliverer) {
	p.deliverers[channel] = d
}

func (p *Processor) Handle(ctx context.Context, msg redis.XMessage) error {
	taskType, _ := msg.Values["type"].(string)

	switch taskType {
	case TypeCampaignDeliver:
		delivery, err := decodeDelivery(msg.Values)
		if err != nil {
			// A malformed entry never decodes; acknowledge it instead of
			// claiming it again on every interval.
			p.logger.Error().Err(err).Str("message_id", msg.ID).Msg("dropping undecodable delivery")
			return nil
		}
		return p.deliver(ctx, delivery)
	default:
		p.logger.Warn().Str("type", taskType).Str("message_id", msg.ID).Msg("unknown task type")
		return nil
	}
}

func (p *Processor) deliver(ctx context.Context, d Delivery) error {
	deliverer, ok := p.deliverers[d.Channel]
	if !ok {
		deliverer = p.fallback
	}
	err := deliverer.Deliver(ctx, d.Message())
	if errors.Is(err, notify.ErrNoRecipients) {
		// Retrying cannot grow the audience.
		p.logger.Warn().Str("campaign_id", d.CampaignID).Str("channel", d.Channel).Msg("campaign has no recipients")
		return nil
	}
	if err != nil {
		return fmt.Errorf("deliver campaign %s over %s: %w", d.CampaignID, d.Channel, err)
	}
	return nil
}
