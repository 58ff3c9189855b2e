package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/logger"
	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/session"
)

// Verify resolves a bearer token to its session record. A token that was
// never issued, has expired, or is malformed all get the same 401 so a
// caller cannot tell a forged token from a stale one.
func (h *Handler) Verify(c *gin.Context) {
	token := c.Param("token")

	rec, err := h.resolver.Resolve(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			return
		}
		if errors.Is(err, session.ErrUnavailable) {
			logger.Error("session store unavailable", map[string]any{
				"error": err.Error(),
			})
			c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Service unavailable"})
			return
		}
		// Undecodable stored value: treat like a bad token rather than
		// exposing storage internals.
		logger.Error("failed to decode session record", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
		return
	}

	c.JSON(http.StatusOK, rec)
}
