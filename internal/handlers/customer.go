package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"lumenquest/internal/filter"
	"lumenquest/internal/models"
)

var (
	noOffers = emptyState{
		Title: "No offers found",
		Hint:  "Check back soon for new deals.",
	}
	noNotifications = emptyState{
		Title: "You're all caught up",
		Hint:  "New notifications will appear here.",
	}
)

func (h HandlerSet) userID(c *gin.Context) string {
	return currentSession(c).Identity.ID
}

func (h HandlerSet) GetSubscription(c *gin.Context) {
	sub, err := h.customers.Subscription(c.Request.Context(), h.userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}

func (h HandlerSet) SubscriptionUsage(c *gin.Context) {
	usage, err := h.customers.Usage(c.Request.Context(), h.userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": usage})
}

func (h HandlerSet) SubscriptionOptions(c *gin.Context) {
	opts, err := h.customers.Options(c.Request.Context(), h.userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

type changePlanRequest struct {
	PlanID string `json:"planId" binding:"required"`
}

func (h HandlerSet) UpgradeSubscription(c *gin.Context) {
	h.changePlan(c, h.customers.Upgrade)
}

func (h HandlerSet) DowngradeSubscription(c *gin.Context) {
	h.changePlan(c, h.customers.Downgrade)
}

type planChanger func(ctx context.Context, userID, planID string) (models.Subscription, error)

func (h HandlerSet) changePlan(c *gin.Context, change planChanger) {
	var req changePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	sub, err := change(c.Request.Context(), h.userID(c), req.PlanID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func (h HandlerSet) CancelSubscription(c *gin.Context) {
	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	sub, err := h.customers.Cancel(c.Request.Context(), h.userID(c), req.Reason)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}

func (h HandlerSet) RenewSubscription(c *gin.Context) {
	sub, err := h.customers.Renew(c.Request.Context(), h.userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}

func (h HandlerSet) ListOffers(c *gin.Context) {
	category, err := filter.ParseOfferCategoryFilter(c.Query("category"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	offers, err := h.customers.Offers(c.Request.Context(), category)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newListResponse(offers, noOffers))
}

func (h HandlerSet) ListNotifications(c *gin.Context) {
	items, err := h.customers.Notifications(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	unread := 0
	for _, n := range items {
		if !n.Read {
			unread++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"notifications": newListResponse(items, noNotifications),
		"unread":        unread,
	})
}

func (h HandlerSet) MarkNotificationRead(c *gin.Context) {
	if err := h.customers.MarkNotificationRead(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
