package models

import "time"

type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusSuspended AccountStatus = "suspended"
	AccountStatusCancelled AccountStatus = "cancelled"
)

func (s AccountStatus) Valid() bool {
	switch s {
	case AccountStatusActive, AccountStatusSuspended, AccountStatusCancelled:
		return true
	}
	return false
}

// Account is a subscriber as seen from the admin user list. Plan holds the
// plan name, not its id.
type Account struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	Plan           string        `json:"plan"`
	Status         AccountStatus `json:"status"`
	JoinDate       string        `json:"joinDate"`
	LastLogin      time.Time     `json:"lastLogin"`
	TotalSpent     float64       `json:"totalSpent"`
	SupportTickets int           `json:"supportTickets"`
}

type AccountSummary struct {
	Total          int      `json:"total"`
	Active         int      `json:"active"`
	TotalRevenue   float64  `json:"totalRevenue"`
	SupportTickets int      `json:"supportTickets"`
	Plans          []string `json:"plans"`
}
