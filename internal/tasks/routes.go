package tasks

import (
	"github.com/rs/zerolog"

	"lumenquest/internal/config"
	"lumenquest/internal/models"
	"lumenquest/internal/notify"
)

// NewCampaignProcessor sends email through SendGrid when an API key is
// configured. Every other channel is recorded by the log deliverer.
func NewCampaignProcessor(cfg config.EmailConfig, logger zerolog.Logger) *Processor {
	p := NewProcessor(logger, notify.NewLogDeliverer(logger))
	if cfg.SendGridAPIKey != "" {
		p.Route(string(models.TemplateTypeEmail), notify.NewSendGridDeliverer(cfg.SendGridAPIKey, cfg.FromName, cfg.FromAddress, logger))
	} else {
		logger.Warn().Msg("no sendgrid api key, email campaigns are only logged")
	}
	return p
}
