// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"coastal/internal/delivery/http/middleware"
	"coastal/internal/delivery/http/router/handler"
	"coastal/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers to register, injected by Fx.
type RouterParams struct {
	fx.In

	BarracaHandler      *handler.BarracaHandler
	RegistrationHandler *handler.RegistrationHandler
	SessionHandler      *handler.SessionHandler
	SubscriptionHandler *handler.SubscriptionHandler
	StatusHandler       *handler.StatusHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

type router struct {
	barracaHandler      *handler.BarracaHandler
	registrationHandler *handler.RegistrationHandler
	sessionHandler      *handler.SessionHandler
	subscriptionHandler *handler.SubscriptionHandler
	statusHandler       *handler.StatusHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		barracaHandler:      params.BarracaHandler,
		registrationHandler: params.RegistrationHandler,
		sessionHandler:      params.SessionHandler,
		subscriptionHandler: params.SubscriptionHandler,
		statusHandler:       params.StatusHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public directory and signup surface
	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/barracas", r.barracaHandler.List)
		apiGroup.GET("/barracas/:id", r.barracaHandler.Get)
		apiGroup.GET("/status/weather", r.statusHandler.GetWeather)
		apiGroup.POST("/registrations", r.registrationHandler.Submit)
		apiGroup.POST("/subscriptions", r.subscriptionHandler.Subscribe)
		apiGroup.GET("/subscriptions/check", r.subscriptionHandler.Check)
		apiGroup.POST("/subscriptions/unsubscribe", r.subscriptionHandler.Unsubscribe)
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.sessionHandler.Login)

		authenticated := authGroup.Group("")
		authenticated.Use(r.authMiddleware.Authenticate)
		authenticated.POST("/logout", r.sessionHandler.Logout)
		authenticated.GET("/me", r.sessionHandler.Me)
	}

	// Full dashboard, admin role only
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/barracas", r.barracaHandler.Create)
		adminGroup.PUT("/barracas/:id", r.barracaHandler.Update)
		adminGroup.DELETE("/barracas/:id", r.barracaHandler.Delete)

		adminGroup.GET("/registrations", r.registrationHandler.List)
		adminGroup.GET("/registrations/stats", r.registrationHandler.Stats)
		adminGroup.GET("/registrations/:id", r.registrationHandler.Get)
		adminGroup.PUT("/registrations/:id/status", r.registrationHandler.Review)
		adminGroup.POST("/registrations/:id/convert", r.registrationHandler.Convert)
		adminGroup.DELETE("/registrations/:id", r.registrationHandler.Delete)

		adminGroup.GET("/subscriptions", r.subscriptionHandler.List)
		adminGroup.GET("/subscriptions/count", r.subscriptionHandler.Count)

		adminGroup.PUT("/status/weather", r.statusHandler.SetWeather)
	}

	// Status quick-toggle panel, reachable by both admin roles
	toggleGroup := e.Group("/toggle")
	toggleGroup.Use(r.authMiddleware.Authenticate)
	toggleGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleSpecialAdmin))
	{
		toggleGroup.GET("/overrides", r.barracaHandler.ListOverrides)
		toggleGroup.GET("/manual-status", r.barracaHandler.ListManualStatus)
		toggleGroup.PUT("/barracas/:id/status", r.barracaHandler.SetManualStatus)
		toggleGroup.POST("/barracas/:id/override", r.barracaHandler.Override)
		toggleGroup.DELETE("/barracas/:id/override", r.barracaHandler.ClearOverride)
	}
}
