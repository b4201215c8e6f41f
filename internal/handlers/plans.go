package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lumenquest/internal/filter"
	"lumenquest/internal/models"
	"lumenquest/internal/service"
)

var noPlans = emptyState{
	Title: "No plans found",
	Hint:  "Try adjusting your search or filters.",
}

func parsePlanFilter(c *gin.Context) (filter.PlanFilter, error) {
	speed, err := filter.ParseSpeedTier(c.Query("speed"))
	if err != nil {
		return filter.PlanFilter{}, err
	}
	category, err := filter.ParseCategoryFilter(c.Query("category"))
	if err != nil {
		return filter.PlanFilter{}, err
	}
	price, err := filter.ParsePriceRange(c.Query("minPrice"), c.Query("maxPrice"))
	if err != nil {
		return filter.PlanFilter{}, err
	}
	return filter.PlanFilter{
		Search:   c.Query("search"),
		Category: category,
		Price:    price,
		Speed:    speed,
	}, nil
}

func (h HandlerSet) BrowsePlans(c *gin.Context) {
	f, err := parsePlanFilter(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	plans, err := h.plans.Browse(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newListResponse(plans, noPlans))
}

func (h HandlerSet) GetPlan(c *gin.Context) {
	plan, err := h.plans.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan, "savings": plan.Savings()})
}

func (h HandlerSet) AdminListPlans(c *gin.Context) {
	f, err := parsePlanFilter(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	ctx := c.Request.Context()
	plans, err := h.plans.List(ctx, f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	stats, err := h.plans.Stats(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"plans": newListResponse(plans, noPlans),
		"stats": stats,
	})
}

type planRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	DownloadSpeed int      `json:"downloadSpeed" binding:"required,gt=0"`
	UploadSpeed   int      `json:"uploadSpeed" binding:"required,gt=0"`
	DataQuota     string   `json:"dataQuota" binding:"required"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
	OriginalPrice *float64 `json:"originalPrice" binding:"omitempty,gte=0"`
	Category      string   `json:"category" binding:"required,oneof=basic premium enterprise"`
	Features      []string `json:"features"`
	Popular       bool     `json:"popular"`
	Active        *bool    `json:"active"`
}

func (r planRequest) input() service.PlanInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return service.PlanInput{
		Name:          r.Name,
		Description:   r.Description,
		DownloadSpeed: r.DownloadSpeed,
		UploadSpeed:   r.UploadSpeed,
		DataQuota:     r.DataQuota,
		Price:         *r.Price,
		OriginalPrice: r.OriginalPrice,
		Category:      models.PlanCategory(r.Category),
		Features:      r.Features,
		Popular:       r.Popular,
		Active:        active,
	}
}

func (h HandlerSet) CreatePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	plan, err := h.plans.Create(c.Request.Context(), req.input())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"plan": plan})
}

func (h HandlerSet) UpdatePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	plan, err := h.plans.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (h HandlerSet) TogglePlan(c *gin.Context) {
	plan, err := h.plans.ToggleActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (h HandlerSet) DeletePlan(c *gin.Context) {
	if err := h.plans.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
