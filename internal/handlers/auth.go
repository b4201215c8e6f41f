package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"lumenquest/internal/models"
	"lumenquest/internal/service"
)

const sessionHeader = "X-Session-Id"

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	AccessToken string          `json:"accessToken"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	SessionID   string          `json:"sessionId"`
	User        models.Identity `json:"user"`
}

func newAuthResponse(result service.AuthResult) authResponse {
	return authResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
		SessionID:   result.SessionID,
		User:        result.Identity,
	}
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_fields", "message": "Please fill in all fields"})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAuthResponse(result))
}

type signupRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

func (h HandlerSet) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_fields", "message": "Please fill in all fields"})
		return
	}

	result, err := h.auth.Signup(c.Request.Context(), service.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newAuthResponse(result))
}

func (h HandlerSet) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), currentSession(c).ID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Session reports whether the caller is signed in. A valid bearer token
// wins; otherwise a persisted session id in X-Session-Id is resumed and a
// fresh token issued, the way a reloaded client restores its identity.
func (h HandlerSet) Session(c *gin.Context) {
	ctx := c.Request.Context()

	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		session, err := h.auth.Authenticate(ctx, strings.TrimPrefix(header, "Bearer "))
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"isAuthenticated": true, "user": session.Identity, "sessionId": session.ID})
			return
		}
		if !errors.Is(err, service.ErrUnauthenticated) {
			h.respondError(c, err)
			return
		}
	}

	if sessionID := c.GetHeader(sessionHeader); sessionID != "" {
		result, err := h.auth.Resume(ctx, sessionID)
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"isAuthenticated": true, "user": result.Identity, "sessionId": result.SessionID, "auth": newAuthResponse(result)})
			return
		}
		if !errors.Is(err, service.ErrUnauthenticated) {
			h.respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"isAuthenticated": false})
}

func (h HandlerSet) Me(c *gin.Context) {
	session := currentSession(c)
	c.JSON(http.StatusOK, gin.H{
		"user":      session.Identity,
		"expiresAt": session.ExpiresAt,
	})
}
