package portal

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRole = errors.New("invalid portal role")

// Role selects which dashboard a session renders.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func ParseRole(raw string) (Role, error) {
	switch role := Role(strings.ToLower(strings.TrimSpace(raw))); role {
	case RoleUser, RoleAdmin:
		return role, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, raw)
}

// Other returns the role a toggle switches to.
func (r Role) Other() Role {
	if r == RoleAdmin {
		return RoleUser
	}
	return RoleAdmin
}

type NavItem struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

var (
	userNav = []NavItem{
		{Href: "/", Label: "Dashboard"},
		{Href: "/plans", Label: "Browse Plans"},
		{Href: "/subscriptions", Label: "My Subscriptions"},
		{Href: "/offers", Label: "Offers"},
	}
	adminNav = []NavItem{
		{Href: "/admin", Label: "Overview"},
		{Href: "/admin/plans", Label: "Manage Plans"},
		{Href: "/admin/analytics", Label: "Analytics"},
		{Href: "/admin/users", Label: "Users"},
		{Href: "/admin/notifications", Label: "Notifications"},
	}
)

// NavItems returns a copy of the navigation shown for role.
func NavItems(role Role) []NavItem {
	items := userNav
	if role == RoleAdmin {
		items = adminNav
	}
	return append([]NavItem(nil), items...)
}
