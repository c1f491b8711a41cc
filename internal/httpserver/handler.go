package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	eventHTTP "linkylink/internal/event/delivery/http"
	"linkylink/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	if err := srv.loadTemplates(); err != nil {
		return err
	}

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.AccessLog())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI is not served in production.
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Info(context.Background(), "Swagger UI disabled in production")
		return
	}
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	h := eventHTTP.New(srv.l, srv.eventUC, srv.display)

	eventHTTP.RegisterPageRoutes(srv.gin.Group(""), h, srv.mw)

	api := srv.gin.Group("/api/v1", srv.mw.CORS())
	eventHTTP.RegisterAPIRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Event routes registered at /, /generate, /reset, /event.ics and /api/v1/events")
	return nil
}
