package filter

import (
	"fmt"
	"strings"

	"lumenquest/internal/models"
)

type StatusFilter string

func ParseStatusFilter(raw string) (StatusFilter, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" || value == All {
		return All, nil
	}
	if !models.AccountStatus(value).Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return StatusFilter(value), nil
}

type AccountFilter struct {
	Search string
	Status StatusFilter
	// Plan is a plan name or All.
	Plan string
}

func (f AccountFilter) Match(a models.Account) bool {
	return containsFold(f.Search, a.Name, a.Email) &&
		(f.Status == "" || f.Status == All || string(f.Status) == string(a.Status)) &&
		(f.Plan == "" || f.Plan == All || f.Plan == a.Plan)
}

func Accounts(accounts []models.Account, f AccountFilter) []models.Account {
	return Apply(accounts, f.Match)
}

// DistinctPlans lists the plan names held by accounts in first-seen order.
func DistinctPlans(accounts []models.Account) []string {
	seen := make(map[string]struct{}, len(accounts))
	plans := make([]string, 0, len(accounts))
	for _, a := range accounts {
		if _, ok := seen[a.Plan]; ok {
			continue
		}
		seen[a.Plan] = struct{}{}
		plans = append(plans, a.Plan)
	}
	return plans
}
