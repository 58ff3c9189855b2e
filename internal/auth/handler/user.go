package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/directory"
	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/logger"
)

type userResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// GetUser is a plain pass-through to the directory; it carries no session
// logic. The stored secret never leaves this process.
func (h *Handler) GetUser(c *gin.Context) {
	username := c.Param("username")

	user, err := h.dir.Lookup(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		logger.Error("directory lookup failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Service unavailable"})
		return
	}

	c.JSON(http.StatusOK, userResponse{
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	})
}
