package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lumenquest/internal/portal"
)

const portalKeepAlive = 25 * time.Second

type portalResponse struct {
	Role portal.Role      `json:"role"`
	Nav  []portal.NavItem `json:"nav"`
}

func newPortalResponse(role portal.Role) portalResponse {
	return portalResponse{Role: role, Nav: portal.NavItems(role)}
}

func (h HandlerSet) portalStore(c *gin.Context) *portal.Store {
	return h.portals.For(currentSession(c).ID)
}

func (h HandlerSet) GetPortal(c *gin.Context) {
	c.JSON(http.StatusOK, newPortalResponse(h.portalStore(c).Role()))
}

type setPortalRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h HandlerSet) SetPortal(c *gin.Context) {
	var req setPortalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	role, err := portal.ParseRole(req.Role)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPortalResponse(h.portalStore(c).Set(role)))
}

func (h HandlerSet) TogglePortal(c *gin.Context) {
	c.JSON(http.StatusOK, newPortalResponse(h.portalStore(c).Toggle()))
}

func (h HandlerSet) PortalNav(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": portal.NavItems(h.portalStore(c).Role())})
}

// PortalEvents streams the current role and every later change as
// server-sent "role" events until the client disconnects.
func (h HandlerSet) PortalEvents(c *gin.Context) {
	store := h.portalStore(c)
	updates := store.Subscribe(c.Request.Context())

	// The stream outlives the server's write timeout.
	if err := http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{}); err != nil {
		h.log.Debug().Err(err).Msg("portal stream keeps server write deadline")
	}

	keepAlive := time.NewTicker(portalKeepAlive)
	defer keepAlive.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("role", newPortalResponse(store.Role()))
	c.Writer.Flush()

	c.Stream(func(io.Writer) bool {
		select {
		case role, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("role", newPortalResponse(role))
			return true
		case <-keepAlive.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
