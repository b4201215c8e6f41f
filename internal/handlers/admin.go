package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lumenquest/internal/filter"
	"lumenquest/internal/models"
	"lumenquest/internal/service"
)

var (
	noUsers = emptyState{
		Title: "No users found",
		Hint:  "Try adjusting your search or filters.",
	}
	noTemplates = emptyState{
		Title: "No templates yet",
		Hint:  "Create a template to start sending notifications.",
	}
	noCampaigns = emptyState{
		Title: "No campaigns yet",
		Hint:  "Create a campaign from an active template.",
	}
)

func (h HandlerSet) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Overview(c.Request.Context()))
}

func (h HandlerSet) ResolveAlert(c *gin.Context) {
	alert, err := h.analytics.ResolveAlert(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alert": alert})
}

func (h HandlerSet) Analytics(c *gin.Context) {
	rng, err := service.ParseRange(c.Query("range"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	report, err := h.analytics.Report(c.Request.Context(), rng)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

type exportRequest struct {
	Range string `json:"range"`
}

func (h HandlerSet) ExportAnalytics(c *gin.Context) {
	var req exportRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}
	rng, err := service.ParseRange(req.Range)
	if err != nil {
		h.respondError(c, err)
		return
	}
	export, err := h.analytics.Export(c.Request.Context(), rng)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, export)
}

func (h HandlerSet) ListUsers(c *gin.Context) {
	status, err := filter.ParseStatusFilter(c.Query("status"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	plan := c.Query("plan")
	if plan == "" {
		plan = filter.All
	}

	ctx := c.Request.Context()
	accounts, err := h.accounts.List(ctx, filter.AccountFilter{
		Search: c.Query("search"),
		Status: status,
		Plan:   plan,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	summary, err := h.accounts.Summary(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"users":   newListResponse(accounts, noUsers),
		"summary": summary,
	})
}

func (h HandlerSet) SuspendUser(c *gin.Context) {
	account, err := h.accounts.Suspend(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": account})
}

func (h HandlerSet) ReactivateUser(c *gin.Context) {
	account, err := h.accounts.Reactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": account})
}

func (h HandlerSet) DeleteUser(c *gin.Context) {
	if err := h.accounts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h HandlerSet) ListTemplates(c *gin.Context) {
	templates, err := h.campaigns.Templates(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newListResponse(templates, noTemplates))
}

type templateRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Category string `json:"category" binding:"required"`
	Active   *bool  `json:"active"`
}

func (h HandlerSet) CreateTemplate(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	tpl, err := h.campaigns.CreateTemplate(c.Request.Context(), service.TemplateInput{
		Title:    req.Title,
		Content:  req.Content,
		Type:     models.TemplateType(req.Type),
		Category: models.TemplateCategory(req.Category),
		Active:   active,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"template": tpl})
}

func (h HandlerSet) ToggleTemplate(c *gin.Context) {
	tpl, err := h.campaigns.ToggleTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"template": tpl})
}

func (h HandlerSet) ListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()
	campaigns, err := h.campaigns.Campaigns(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	stats, err := h.campaigns.Stats(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"campaigns": newListResponse(campaigns, noCampaigns),
		"stats":     stats,
	})
}

func (h HandlerSet) EstimateAudience(c *gin.Context) {
	audience := models.Audience(c.Query("audience"))
	if !audience.Valid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid_audience"})
		return
	}
	n, err := h.campaigns.EstimateAudience(c.Request.Context(), audience)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"audience": audience, "recipients": n})
}

type campaignRequest struct {
	Name           string    `json:"name" binding:"required"`
	Template       string    `json:"template" binding:"required"`
	TargetAudience string    `json:"targetAudience" binding:"required"`
	ScheduledDate  time.Time `json:"scheduledDate" binding:"required"`
}

func (h HandlerSet) CreateCampaign(c *gin.Context) {
	var req campaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	campaign, err := h.campaigns.CreateCampaign(c.Request.Context(), service.CampaignInput{
		Name:           req.Name,
		Template:       req.Template,
		TargetAudience: models.Audience(req.TargetAudience),
		ScheduledDate:  req.ScheduledDate,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"campaign": campaign})
}

func (h HandlerSet) ScheduleCampaign(c *gin.Context) {
	campaign, err := h.campaigns.Schedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

func (h HandlerSet) CancelCampaign(c *gin.Context) {
	campaign, err := h.campaigns.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

// DispatchCampaigns runs the dispatcher now instead of waiting for the
// next scheduled tick.
func (h HandlerSet) DispatchCampaigns(c *gin.Context) {
	sent, err := h.campaigns.Dispatch(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": sent})
}
