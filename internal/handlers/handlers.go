package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lumenquest/internal/config"
	"lumenquest/internal/middleware"
	"lumenquest/internal/models"
	"lumenquest/internal/portal"
	"lumenquest/internal/service"
)

// Services bundles the application services the HTTP layer drives.
type Services struct {
	Auth      *service.AuthService
	Plans     *service.PlanService
	Accounts  *service.AccountService
	Campaigns *service.CampaignService
	Customers *service.CustomerService
	Analytics *service.AnalyticsService
}

// HealthCheck is one dependency reported by the health endpoint.
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

type HandlerSet struct {
	log       zerolog.Logger
	cfg       *config.AppConfig
	auth      *service.AuthService
	plans     *service.PlanService
	accounts  *service.AccountService
	campaigns *service.CampaignService
	customers *service.CustomerService
	analytics *service.AnalyticsService
	portals   *portal.Registry
	checks    []HealthCheck
}

func NewHandlerSet(log zerolog.Logger, cfg *config.AppConfig, svc Services, portals *portal.Registry, checks ...HealthCheck) HandlerSet {
	return HandlerSet{
		log:       log,
		cfg:       cfg,
		auth:      svc.Auth,
		plans:     svc.Plans,
		accounts:  svc.Accounts,
		campaigns: svc.Campaigns,
		customers: svc.Customers,
		analytics: svc.Analytics,
		portals:   portals,
		checks:    checks,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	requireAuth := middleware.Auth(h.auth)

	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/signup", h.Signup)
		auth.GET("/session", h.Session)
		auth.POST("/logout", requireAuth, h.Logout)
		auth.GET("/me", requireAuth, h.Me)
	}

	v1.GET("/plans", h.BrowsePlans)
	v1.GET("/plans/:id", h.GetPlan)

	customer := v1.Group("")
	customer.Use(requireAuth)
	{
		customer.GET("/portal", h.GetPortal)
		customer.PUT("/portal", h.SetPortal)
		customer.POST("/portal/toggle", h.TogglePortal)
		customer.GET("/portal/nav", h.PortalNav)
		customer.GET("/portal/events", h.PortalEvents)

		customer.GET("/subscription", h.GetSubscription)
		customer.GET("/subscription/usage", h.SubscriptionUsage)
		customer.GET("/subscription/options", h.SubscriptionOptions)
		customer.POST("/subscription/upgrade", h.UpgradeSubscription)
		customer.POST("/subscription/downgrade", h.DowngradeSubscription)
		customer.POST("/subscription/cancel", h.CancelSubscription)
		customer.POST("/subscription/renew", h.RenewSubscription)

		customer.GET("/offers", h.ListOffers)
		customer.GET("/notifications", h.ListNotifications)
		customer.POST("/notifications/:id/read", h.MarkNotificationRead)
	}

	admin := v1.Group("/admin")
	admin.Use(requireAuth, middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/overview", h.Overview)
		admin.POST("/alerts/:id/resolve", h.ResolveAlert)
		admin.GET("/analytics", h.Analytics)
		admin.POST("/analytics/export", h.ExportAnalytics)

		admin.GET("/plans", h.AdminListPlans)
		admin.POST("/plans", h.CreatePlan)
		admin.PUT("/plans/:id", h.UpdatePlan)
		admin.POST("/plans/:id/toggle", h.TogglePlan)
		admin.DELETE("/plans/:id", h.DeletePlan)

		admin.GET("/users", h.ListUsers)
		admin.POST("/users/:id/suspend", h.SuspendUser)
		admin.POST("/users/:id/reactivate", h.ReactivateUser)
		admin.DELETE("/users/:id", h.DeleteUser)

		admin.GET("/templates", h.ListTemplates)
		admin.POST("/templates", h.CreateTemplate)
		admin.POST("/templates/:id/toggle", h.ToggleTemplate)

		admin.GET("/campaigns", h.ListCampaigns)
		admin.GET("/campaigns/estimate", h.EstimateAudience)
		admin.POST("/campaigns", h.CreateCampaign)
		admin.POST("/campaigns/dispatch", h.DispatchCampaigns)
		admin.POST("/campaigns/:id/schedule", h.ScheduleCampaign)
		admin.POST("/campaigns/:id/cancel", h.CancelCampaign)
	}
}

// emptyState is rendered by clients in place of an empty list.
type emptyState struct {
	Title string `json:"title"`
	Hint  string `json:"hint"`
}

type listResponse[T any] struct {
	Items      []T         `json:"items"`
	Count      int         `json:"count"`
	EmptyState *emptyState `json:"emptyState,omitempty"`
}

func newListResponse[T any](items []T, empty emptyState) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	resp := listResponse[T]{Items: items, Count: len(items)}
	if len(items) == 0 {
		resp.EmptyState = &empty
	}
	return resp
}

func currentSession(c *gin.Context) models.Session {
	session, _ := middleware.CurrentSession(c)
	return session
}
