package models

import "time"

type OfferType string

const (
	OfferTypeDiscount OfferType = "discount"
	OfferTypeUpgrade  OfferType = "upgrade"
	OfferTypeBonus    OfferType = "bonus"
	OfferTypeLimited  OfferType = "limited"
)

type OfferCategory string

const (
	OfferCategoryNewCustomer      OfferCategory = "new-customer"
	OfferCategoryExistingCustomer OfferCategory = "existing-customer"
	OfferCategoryLoyalty          OfferCategory = "loyalty"
	OfferCategorySeasonal         OfferCategory = "seasonal"
)

func (c OfferCategory) Valid() bool {
	switch c {
	case OfferCategoryNewCustomer, OfferCategoryExistingCustomer, OfferCategoryLoyalty, OfferCategorySeasonal:
		return true
	}
	return false
}

type Offer struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Type          OfferType     `json:"type"`
	Discount      *float64      `json:"discount,omitempty"`
	OriginalPrice *float64      `json:"originalPrice,omitempty"`
	NewPrice      *float64      `json:"newPrice,omitempty"`
	ValidUntil    string        `json:"validUntil"`
	Terms         []string      `json:"terms"`
	Featured      bool          `json:"featured"`
	Category      OfferCategory `json:"category"`
}

type NotificationType string

const (
	NotificationTypeInfo      NotificationType = "info"
	NotificationTypeSuccess   NotificationType = "success"
	NotificationTypeWarning   NotificationType = "warning"
	NotificationTypePromotion NotificationType = "promotion"
)

// Notification is an entry of a customer's inbox.
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}
