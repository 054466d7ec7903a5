package httpserver

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"calendar-assistant/internal/middleware"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	// The session cookie only flows cross-origin when credentials are
	// allowed, so origins must be an explicit list, never "*".
	srv.gin.Use(cors.New(cors.Config{
		AllowOrigins:     srv.cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	srv.l.Infof(context.Background(), "CORS origins: %v", srv.cors.AllowedOrigins)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires every domain under /api. Auth comes
// first: the calendar store mints its Google access tokens through the
// auth use case, and the assistant executes through the calendar one.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api")
	api.GET("/health", srv.apiHealth)

	mw := middleware.New(srv.l, srv.jwtManager)

	authUC, err := srv.setupAuthDomain(ctx, api, mw)
	if err != nil {
		return err
	}

	calendarUC, err := srv.setupCalendarDomain(ctx, api, mw, authUC)
	if err != nil {
		return err
	}

	if err := srv.setupAssistantDomain(ctx, api, mw, calendarUC); err != nil {
		return err
	}

	return nil
}
