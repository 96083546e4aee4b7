// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"brewhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all the handlers, injected by Fx.
type RouterParams struct {
	fx.In

	StoreHandler     *handler.StoreHandler
	EmployeeHandler  *handler.EmployeeHandler
	CustomerHandler  *handler.CustomerHandler
	ProductHandler   *handler.ProductHandler
	PromotionHandler *handler.PromotionHandler
	OrderHandler     *handler.OrderHandler
	ReportHandler    *handler.ReportHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	storeGroup := api.Group("/stores")
	{
		storeGroup.POST("", r.params.StoreHandler.CreateStore)
		storeGroup.GET("", r.params.StoreHandler.ListStores)
		storeGroup.GET("/:id", r.params.StoreHandler.GetStore)
		storeGroup.PUT("/:id", r.params.StoreHandler.UpdateStore)
		storeGroup.DELETE("/:id", r.params.StoreHandler.DeleteStore)
	}

	employeeGroup := api.Group("/employees")
	{
		employeeGroup.POST("", r.params.EmployeeHandler.CreateEmployee)
		employeeGroup.GET("", r.params.EmployeeHandler.ListEmployees)
		employeeGroup.GET("/:id", r.params.EmployeeHandler.GetEmployee)
		employeeGroup.PUT("/:id", r.params.EmployeeHandler.UpdateEmployee)
		employeeGroup.DELETE("/:id", r.params.EmployeeHandler.DeleteEmployee)
	}

	customerGroup := api.Group("/customers")
	{
		customerGroup.POST("", r.params.CustomerHandler.CreateCustomer)
		customerGroup.GET("", r.params.CustomerHandler.ListCustomers)
		customerGroup.GET("/:id", r.params.CustomerHandler.GetCustomer)
		customerGroup.PUT("/:id", r.params.CustomerHandler.UpdateCustomer)
		customerGroup.DELETE("/:id", r.params.CustomerHandler.DeleteCustomer)
	}

	productGroup := api.Group("/products")
	{
		productGroup.POST("", r.params.ProductHandler.CreateProduct)
		productGroup.GET("", r.params.ProductHandler.ListProducts)
		productGroup.GET("/:id", r.params.ProductHandler.GetProduct)
		productGroup.PUT("/:id", r.params.ProductHandler.UpdateProduct)
		productGroup.DELETE("/:id", r.params.ProductHandler.DeleteProduct)
	}

	promotionGroup := api.Group("/promotions")
	{
		promotionGroup.POST("", r.params.PromotionHandler.CreatePromotion)
		promotionGroup.GET("", r.params.PromotionHandler.ListPromotions)
		promotionGroup.GET("/active", r.params.PromotionHandler.ListActivePromotions)
		promotionGroup.GET("/:id", r.params.PromotionHandler.GetPromotion)
		promotionGroup.PUT("/:id", r.params.PromotionHandler.UpdatePromotion)
		promotionGroup.DELETE("/:id", r.params.PromotionHandler.DeletePromotion)
	}

	orderGroup := api.Group("/orders")
	{
		orderGroup.POST("", r.params.OrderHandler.CreateOrder)
		orderGroup.POST("/preview", r.params.OrderHandler.PreviewCart)
		orderGroup.GET("", r.params.OrderHandler.ListOrders)
		orderGroup.GET("/:id", r.params.OrderHandler.GetOrder)
		orderGroup.POST("/:id/promotions", r.params.OrderHandler.ApplyPromotions)
	}

	reportGroup := api.Group("/reports")
	{
		reportGroup.GET("/top-products", r.params.ReportHandler.TopProducts)
		reportGroup.GET("/monthly-sales", r.params.ReportHandler.MonthlySales)
		reportGroup.GET("/top-customers", r.params.ReportHandler.TopCustomers)
		reportGroup.GET("/low-stock", r.params.ReportHandler.LowStock)
	}
}
