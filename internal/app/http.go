package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/auth/credentials"
	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/auth/handler"
	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/config"
	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/session"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	dir := infra.Directory()
	sessionStore := session.NewRedisStore(infra.Redis.Client)

	credentialService := credentials.NewService(dir)
	issuer := session.NewIssuer(sessionStore)
	resolver := session.NewResolver(sessionStore)

	authHandler := handler.NewHandler(
		credentialService,
		issuer,
		resolver,
		dir,
	)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	authHandler.RegisterRoutes(router)

	return router, infra.Close, nil
}
