package filter

import (
	"fmt"
	"strings"

	"lumenquest/internal/models"
)

type OfferCategoryFilter string

func ParseOfferCategoryFilter(raw string) (OfferCategoryFilter, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" || value == All {
		return All, nil
	}
	if !models.OfferCategory(value).Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, raw)
	}
	return OfferCategoryFilter(value), nil
}

func Offers(offers []models.Offer, category OfferCategoryFilter) []models.Offer {
	return Apply(offers, func(o models.Offer) bool {
		return category == "" || category == All || string(category) == string(o.Category)
	})
}
