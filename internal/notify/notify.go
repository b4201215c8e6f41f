// Package notify delivers campaign messages over their channel.
package notify

import (
	"context"
	"errors"
)

var ErrNoRecipients = errors.New("no recipients")

// Message is one campaign send. To holds addresses for channels that
// address individuals; Recipients is the audience size either way.
type Message struct {
	CampaignID string
	Channel    string
	Audience   string
	Subject    string
	Body       string
	To         []string
	Recipients int
}

type Deliverer interface {
	Deliver(ctx context.Context, msg Message) error
}
