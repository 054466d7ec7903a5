package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/auth"
	authHTTP "calendar-assistant/internal/auth/delivery/http"
	authRepo "calendar-assistant/internal/auth/repository/postgre"
	authUC "calendar-assistant/internal/auth/usecase"
	"calendar-assistant/internal/middleware"
)

// setupAuthDomain initializes the auth domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
//
// The use case is returned because the calendar domain mints Google
// access tokens through it.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (auth.UseCase, error) {
	// 1. Repository
	repo := authRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := authUC.New(srv.l, repo, srv.jwtManager, srv.encrypter, srv.google)

	// 3. HTTP Handler
	h := authHTTP.New(srv.l, uc, srv.google.FrontendURL, srv.session.Expiry)

	// 4. Routes: /api/auth/login, /callback, /user, /logout
	authHTTP.RegisterRoutes(api.Group("/auth"), h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
	return uc, nil
}
