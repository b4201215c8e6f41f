package tasks

import (
	"fmt"
	"strconv"
	"strings"

	"lumenquest/internal/notify"
)

const TypeCampaignDeliver = "campaign.deliver"

// Delivery is the stream payload of one campaign send. Stream entries are
// flat string maps, so list fields travel comma separated.
type Delivery struct {
	CampaignID string
	TemplateID string
	Channel    string
	Audience   string
	Subject    string
	Body       string
	To         []string
	Recipients int
}

func (d Delivery) Values() map[string]any {
	return map[string]any{
		"type":       TypeCampaignDeliver,
		"campaignId": d.CampaignID,
		"templateId": d.TemplateID,
		"channel":    d.Channel,
		"audience":   d.Audience,
		"subject":    d.Subject,
		"body":       d.Body,
		"to":         strings.Join(d.To, ","),
		"recipients": strconv.Itoa(d.Recipients),
	}
}

func (d Delivery) Message() notify.Message {
	return notify.Message{
		CampaignID: d.CampaignID,
		Channel:    d.Channel,
		Audience:   d.Audience,
		Subject:    d.Subject,
		Body:       d.Body,
		To:         d.To,
		Recipients: d.Recipients,
	}
}

func decodeDelivery(values map[string]any) (Delivery, error) {
	get := func(key string) string {
		v, _ := values[key].(string)
		return v
	}

	d := Delivery{
		CampaignID: get("campaignId"),
		TemplateID: get("templateId"),
		Channel:    get("channel"),
		Audience:   get("audience"),
		Subject:    get("subject"),
		Body:       get("body"),
	}
	if d.CampaignID == "" || d.Channel == "" {
		return Delivery{}, fmt.Errorf("delivery missing campaignId or channel")
	}
	if to := get("to"); to != "" {
		d.To = strings.Split(to, ",")
	}
	if raw := get("recipients"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Delivery{}, fmt.Errorf("recipients: %w", err)
		}
		d.Recipients = n
	}
	return d, nil
}
