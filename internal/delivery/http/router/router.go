// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agenda/internal/delivery/http/middleware"
	"agenda/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ContactHandler *handler.ContactHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	contactHandler *handler.ContactHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		contactHandler: params.ContactHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes; the session-bound ones require a verified token
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/google", r.authHandler.GoogleSignIn)
		authGroup.POST("/password/reset", r.authHandler.ResetPassword)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.PUT("/password", r.authHandler.ChangePassword, r.authMiddleware.Authenticate)
	}

	// Contact routes, all scoped to the authenticated user
	contactGroup := e.Group("/contacts")
	contactGroup.Use(r.authMiddleware.Authenticate)
	{
		contactGroup.POST("", r.contactHandler.Create)
		contactGroup.GET("", r.contactHandler.List)
		contactGroup.GET("/stream", r.contactHandler.Stream)
		contactGroup.GET("/:id", r.contactHandler.GetByID)
		contactGroup.PUT("/:id", r.contactHandler.Update)
		contactGroup.DELETE("/:id", r.contactHandler.Delete)
	}

	// Profile routes
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.Get)
		profileGroup.POST("", r.profileHandler.Create)
		profileGroup.PUT("", r.profileHandler.Save)
		profileGroup.POST("/avatar", r.profileHandler.SaveAvatar)
	}
}
