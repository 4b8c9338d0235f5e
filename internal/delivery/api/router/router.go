// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"serviceability/config"
	"serviceability/internal/delivery/api/router/handler"
	"serviceability/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MerchantHandler       *handler.MerchantHandler
	OnboardingHandler     *handler.OnboardingHandler
	ServiceabilityHandler *handler.ServiceabilityHandler
	Metrics               *metrics.Metrics
	Config                *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	merchantHandler       *handler.MerchantHandler
	onboardingHandler     *handler.OnboardingHandler
	serviceabilityHandler *handler.ServiceabilityHandler
	metrics               *metrics.Metrics
	config                *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		merchantHandler:       params.MerchantHandler,
		onboardingHandler:     params.OnboardingHandler,
		serviceabilityHandler: params.ServiceabilityHandler,
		metrics:               params.Metrics,
		config:                params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")

	merchantsGroup := apiV1.Group("/merchants")
	{
		merchantsGroup.POST("", r.onboardingHandler.CreateMerchant)
		merchantsGroup.POST("/bulk", r.onboardingHandler.BulkCreateMerchants)
		merchantsGroup.POST("/bulk/file", r.onboardingHandler.ImportMerchants)

		merchantsGroup.GET("", r.merchantHandler.ListMerchants)
		merchantsGroup.GET("/:id", r.serviceabilityHandler.GetMerchantDetail)
		merchantsGroup.PATCH("/:id", r.merchantHandler.UpdateMerchant)
		merchantsGroup.PUT("/:id", r.merchantHandler.UpdateMerchant)
		merchantsGroup.DELETE("/:id", r.merchantHandler.DeleteMerchant)

		merchantsGroup.PUT("/:id/pincodes", r.merchantHandler.AddPincodes)
		merchantsGroup.DELETE("/:id/pincodes", r.merchantHandler.RemovePincodes)
	}

	apiV1.GET("/serviceability", r.serviceabilityHandler.QueryServiceability)
}
