package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/auth/credentials"
	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/directory"
	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/session"
)

type Handler struct {
	credentialService *credentials.Service
	issuer            *session.Issuer
	resolver          *session.Resolver
	dir               directory.Directory
}

func NewHandler(
	credentialService *credentials.Service,
	issuer *session.Issuer,
	resolver *session.Resolver,
	dir directory.Directory,
) *Handler {
	return &Handler{
		credentialService: credentialService,
		issuer:            issuer,
		resolver:          resolver,
		dir:               dir,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/login", h.Login)
	r.GET("/users/:username", h.GetUser)
	r.GET("/verify/:token", h.Verify)
	r.GET("/health", h.Health)
	r.GET("/", h.Root)
}
