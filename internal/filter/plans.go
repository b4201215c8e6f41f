package filter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"lumenquest/internal/models"
)

// SpeedTier selects plans by download speed.
type SpeedTier string

const (
	SpeedAll   SpeedTier = "all"
	SpeedFast  SpeedTier = "fast"
	SpeedUltra SpeedTier = "ultra"
)

const (
	FastMinDownload  = 100
	UltraMinDownload = 500
)

func ParseSpeedTier(raw string) (SpeedTier, error) {
	switch tier := SpeedTier(strings.ToLower(strings.TrimSpace(raw))); tier {
	case "":
		return SpeedAll, nil
	case SpeedAll, SpeedFast, SpeedUltra:
		return tier, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSpeedTier, raw)
}

func (t SpeedTier) Matches(downloadSpeed int) bool {
	switch t {
	case SpeedFast:
		return downloadSpeed >= FastMinDownload
	case SpeedUltra:
		return downloadSpeed >= UltraMinDownload
	}
	return true
}

// CategoryFilter is either All or a plan category.
type CategoryFilter string

func ParseCategoryFilter(raw string) (CategoryFilter, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" || value == All {
		return All, nil
	}
	if !models.PlanCategory(value).Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, raw)
	}
	return CategoryFilter(value), nil
}

func (c CategoryFilter) Matches(category models.PlanCategory) bool {
	return c == "" || c == All || string(c) == string(category)
}

// PriceRange is an inclusive [Min, Max] bound on a monthly price.
type PriceRange struct {
	Min float64
	Max float64
}

// DefaultPriceRange matches the bounds of the plan browser's price slider.
var DefaultPriceRange = PriceRange{Min: 0, Max: 200}

// ParsePriceRange reads optional bounds; a missing bound keeps its default.
// NaN and infinite bounds are rejected.
func ParsePriceRange(rawMin, rawMax string) (PriceRange, error) {
	r := DefaultPriceRange
	if rawMin != "" {
		v, err := parseBound(rawMin)
		if err != nil {
			return PriceRange{}, fmt.Errorf("%w: min %q", ErrInvalidPriceRange, rawMin)
		}
		r.Min = v
	}
	if rawMax != "" {
		v, err := parseBound(rawMax)
		if err != nil {
			return PriceRange{}, fmt.Errorf("%w: max %q", ErrInvalidPriceRange, rawMax)
		}
		r.Max = v
	}
	if r.Min < 0 || r.Min > r.Max {
		return PriceRange{}, fmt.Errorf("%w: [%g, %g]", ErrInvalidPriceRange, r.Min, r.Max)
	}
	return r, nil
}

func parseBound(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite bound %q", raw)
	}
	return v, nil
}

func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

type PlanFilter struct {
	Search   string
	Category CategoryFilter
	Price    PriceRange
	Speed    SpeedTier
}

// DefaultPlanFilter matches every plan priced inside the default range.
func DefaultPlanFilter() PlanFilter {
	return PlanFilter{
		Category: All,
		Price:    DefaultPriceRange,
		Speed:    SpeedAll,
	}
}

func (f PlanFilter) Match(p models.Plan) bool {
	return containsFold(f.Search, p.Name, p.Description) &&
		f.Category.Matches(p.Category) &&
		f.Price.Contains(p.Price) &&
		f.Speed.Matches(p.DownloadSpeed)
}

func Plans(plans []models.Plan, f PlanFilter) []models.Plan {
	return Apply(plans, f.Match)
}
