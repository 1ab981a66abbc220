// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodsafe/internal/delivery/api/middleware"
	"foodsafe/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams collects every handler mounted by the router.
type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	BusinessHandler   *handler.BusinessHandler
	OnboardingHandler *handler.OnboardingHandler
	DeviceHandler     *handler.DeviceHandler
	FileHandler       *handler.FileHandler
	RecordHandlers    handler.RecordHandlers
	AuthMiddleware    *middleware.AuthMiddleware
}

type router struct {
	authHandler       *handler.AuthHandler
	businessHandler   *handler.BusinessHandler
	onboardingHandler *handler.OnboardingHandler
	deviceHandler     *handler.DeviceHandler
	fileHandler       *handler.FileHandler
	recordHandlers    handler.RecordHandlers
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		businessHandler:   params.BusinessHandler,
		onboardingHandler: params.OnboardingHandler,
		deviceHandler:     params.DeviceHandler,
		fileHandler:       params.FileHandler,
		recordHandlers:    params.RecordHandlers,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/files/*", r.fileHandler.Serve)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/business/send-otp", r.authHandler.SendBusinessOTP)
		authGroup.POST("/verify-otp", r.authHandler.VerifyOTP)
		authGroup.POST("/refresh-token", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Everything below requires a session.
	secured := e.Group("", r.authMiddleware.Authenticate)

	secured.GET("/me", r.authHandler.Me)

	businessGroup := secured.Group("/business")
	{
		businessGroup.POST("", r.businessHandler.CreateBusiness)
		businessGroup.POST("/onboard", r.onboardingHandler.Onboard)
		businessGroup.POST("/manufacturing/onboard", r.onboardingHandler.OnboardManufacturing)
		businessGroup.GET("/license/:license_number", r.businessHandler.GetBusinessByLicense)
		businessGroup.GET("/:id", r.businessHandler.GetBusiness)
		businessGroup.PUT("/:id", r.businessHandler.UpdateBusiness)
		businessGroup.GET("/:id/qrcode", r.businessHandler.VerificationQR)
	}

	devicesGroup := secured.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/fcm-token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	for _, records := range r.recordHandlers {
		records.Register(secured)
	}
}
