package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/auth/credentials"
	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/logger"
	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/session"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request"})
		return
	}

	user, err := h.credentialService.Verify(
		c.Request.Context(),
		req.Username,
		req.Password,
	)

	if err != nil {
		if errors.Is(err, credentials.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal error"})
		return
	}

	token, err := h.issuer.Issue(c.Request.Context(), user)
	if err != nil {
		logger.Error("failed to issue session", map[string]any{
			"username": user.Username,
			"error":    err.Error(),
		})
		if errors.Is(err, session.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Service unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
