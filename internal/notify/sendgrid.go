package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// maxPersonalizations is the per-request limit of the v3 mail send API.
const maxPersonalizations = 1000

// SendGridDeliverer sends email campaigns, one personalization per
// recipient so addresses stay private to each other.
type SendGridDeliverer struct {
	client   *sendgrid.Client
	fromName string
	fromAddr string
	log      zerolog.Logger
}

func NewSendGridDeliverer(apiKey, fromName, fromAddr string, log zerolog.Logger) *SendGridDeliverer {
	return &SendGridDeliverer{
		client:   sendgrid.NewSendClient(apiKey),
		fromName: fromName,
		fromAddr: fromAddr,
		log:      log,
	}
}

func (d *SendGridDeliverer) Deliver(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}

	for start := 0; start < len(msg.To); start += maxPersonalizations {
		end := min(start+maxPersonalizations, len(msg.To))
		email := d.build(msg, msg.To[start:end])

		resp, err := d.client.SendWithContext(ctx, email)
		if err != nil {
			return fmt.Errorf("sendgrid send: %w", err)
		}
		if resp.StatusCode >= 300 {
			return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
		}
		d.log.Info().
			Str("campaign_id", msg.CampaignID).
			Int("batch", end-start).
			Int("status", resp.StatusCode).
			Msg("email batch accepted")
	}
	return nil
}

func (d *SendGridDeliverer) build(msg Message, to []string) *mail.SGMailV3 {
	email := mail.NewV3Mail()
	email.SetFrom(mail.NewEmail(d.fromName, d.fromAddr))
	email.Subject = msg.Subject
	for _, addr := range to {
		p := mail.NewPersonalization()
		p.AddTos(mail.NewEmail("", addr))
		email.AddPersonalizations(p)
	}
	email.AddContent(mail.NewContent("text/plain", msg.Body))
	email.SetHeader("X-Campaign-ID", msg.CampaignID)
	return email
}
