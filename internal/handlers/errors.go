package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lumenquest/internal/filter"
	"lumenquest/internal/portal"
	"lumenquest/internal/repository"
	"lumenquest/internal/service"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{filter.ErrInvalidSpeedTier, http.StatusBadRequest, "invalid_speed_tier"},
	{filter.ErrInvalidCategory, http.StatusBadRequest, "invalid_category"},
	{filter.ErrInvalidStatus, http.StatusBadRequest, "invalid_status"},
	{filter.ErrInvalidPriceRange, http.StatusBadRequest, "invalid_price_range"},
	{portal.ErrInvalidRole, http.StatusBadRequest, "invalid_role"},

	{repository.ErrPlanNotFound, http.StatusNotFound, "plan_not_found"},
	{repository.ErrAccountNotFound, http.StatusNotFound, "user_not_found"},
	{repository.ErrUserNotFound, http.StatusNotFound, "user_not_found"},
	{repository.ErrTemplateNotFound, http.StatusNotFound, "template_not_found"},
	{repository.ErrCampaignNotFound, http.StatusNotFound, "campaign_not_found"},
	{repository.ErrSubscriptionNotFound, http.StatusNotFound, "subscription_not_found"},
	{repository.ErrNotificationNotFound, http.StatusNotFound, "notification_not_found"},
	{repository.ErrEmailTaken, http.StatusConflict, "email_taken"},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{service.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
	{service.ErrPlanHasSubscribers, http.StatusConflict, "plan_has_subscribers"},
	{service.ErrInvalidPlan, http.StatusBadRequest, "invalid_plan"},
	{service.ErrInvalidTemplate, http.StatusBadRequest, "invalid_template"},
	{service.ErrInvalidCampaign, http.StatusBadRequest, "invalid_campaign"},
	{service.ErrInvalidTransition, http.StatusConflict, "invalid_transition"},
	{service.ErrNotAnUpgrade, http.StatusBadRequest, "not_an_upgrade"},
	{service.ErrNotADowngrade, http.StatusBadRequest, "not_a_downgrade"},
	{service.ErrPlanUnavailable, http.StatusConflict, "plan_unavailable"},
	{service.ErrCancelReason, http.StatusBadRequest, "cancel_reason_required"},
	{service.ErrSubscriptionClosed, http.StatusConflict, "subscription_cancelled"},
	{service.ErrInvalidRange, http.StatusBadRequest, "invalid_range"},
	{service.ErrAlertNotFound, http.StatusNotFound, "alert_not_found"},
	{service.ErrExportsDisabled, http.StatusServiceUnavailable, "exports_disabled"},
}

// respondError writes the status and code mapped to err. Unmapped errors
// are logged and hidden behind a 500.
func (h HandlerSet) respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			c.AbortWithStatusJSON(m.status, gin.H{"error": m.code, "message": err.Error()})
			return
		}
	}
	_ = c.Error(err)
	h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
}
