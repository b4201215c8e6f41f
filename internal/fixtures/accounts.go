package fixtures

import (
	"time"

	"lumenquest/internal/models"
)

func ts(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}

func Accounts() []models.Account {
	return []models.Account{
		{ID: "1", Name: "John Doe", Email: "john.doe@email.com", Phone: "+1 (555) 123-4567", Plan: "Home Pro", Status: models.AccountStatusActive, JoinDate: "2024-03-15", LastLogin: ts("2025-01-13T10:30:00Z"), TotalSpent: 719.88, SupportTickets: 2},
		{ID: "2", Name: "Sarah Smith", Email: "sarah.smith@email.com", Phone: "+1 (555) 234-5678", Plan: "Ultra Speed", Status: models.AccountStatusActive, JoinDate: "2024-01-22", LastLogin: ts("2025-01-12T15:45:00Z"), TotalSpent: 1199.88, SupportTickets: 0},
		{ID: "3", Name: "Mike Johnson", Email: "mike.johnson@email.com", Phone: "+1 (555) 345-6789", Plan: "Starter Connect", Status: models.AccountStatusActive, JoinDate: "2024-06-10", LastLogin: ts("2025-01-11T09:20:00Z"), TotalSpent: 209.93, SupportTickets: 1},
		{ID: "4", Name: "Lisa Brown", Email: "lisa.brown@email.com", Phone: "+1 (555) 456-7890", Plan: "Home Pro", Status: models.AccountStatusCancelled, JoinDate: "2023-11-05", LastLogin: ts("2025-01-05T14:10:00Z"), TotalSpent: 839.87, SupportTickets: 3},
		{ID: "5", Name: "Alex Wilson", Email: "alex.wilson@email.com", Phone: "+1 (555) 567-8901", Plan: "Business Elite", Status: models.AccountStatusSuspended, JoinDate: "2024-02-28", LastLogin: ts("2025-01-10T11:30:00Z"), TotalSpent: 2199.89, SupportTickets: 5},
	}
}

// DemoUser is a seeded login.
type DemoUser struct {
	ID        string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      models.UserRole
}

func DemoUsers() []DemoUser {
	return []DemoUser{
		{ID: "1", Email: "user@lumenquest.com", Password: "password123", FirstName: "John", LastName: "Doe", Role: models.UserRoleUser},
		{ID: "2", Email: "admin@lumenquest.com", Password: "admin123", FirstName: "Admin", LastName: "User", Role: models.UserRoleAdmin},
	}
}
