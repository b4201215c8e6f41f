package repository

import "errors"

var (
	ErrPlanNotFound         = errors.New("plan not found")
	ErrAccountNotFound      = errors.New("account not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrTemplateNotFound     = errors.New("template not found")
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrNotificationNotFound = errors.New("notification not found")
)
