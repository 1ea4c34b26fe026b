// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shop/config"
	"shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	EmailHandler   *handler.EmailHandler
	CatalogHandler *handler.CatalogHandler
	BasketHandler  *handler.BasketHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	emailHandler   *handler.EmailHandler
	catalogHandler *handler.CatalogHandler
	basketHandler  *handler.BasketHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		emailHandler:   params.EmailHandler,
		catalogHandler: params.CatalogHandler,
		basketHandler:  params.BasketHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Each limited route keeps its own per-IP store.
	loginLimit := middleware.NewRateLimiter(r.config)
	resendLimit := middleware.NewRateLimiter(r.config)
	authenticate := r.authMiddleware.Authenticate
	admin := []echo.MiddlewareFunc{authenticate, r.authMiddleware.RequireAdmin}
	verified := []echo.MiddlewareFunc{authenticate, r.authMiddleware.RequireVerified}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login, loginLimit)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.GET("/get_current_user", r.userHandler.CurrentUser, authenticate)
		authGroup.GET("/found_user", r.userHandler.FindUser)

		authGroup.GET("/all_users", r.userHandler.ListUsers, admin...)
		authGroup.PATCH("/ban_user", r.userHandler.Ban, admin...)
		authGroup.PATCH("/unban_user", r.userHandler.Unban, admin...)
		authGroup.DELETE("/delete_user", r.userHandler.Delete, admin...)
	}

	emailGroup := e.Group("/email")
	emailGroup.Use(authenticate)
	{
		emailGroup.POST("/verify", r.emailHandler.Verify)
		emailGroup.POST("/resend", r.emailHandler.Resend, resendLimit)
	}

	storeGroup := e.Group("/store")
	{
		storeGroup.GET("/categories", r.catalogHandler.ListCategories)
		storeGroup.GET("/categories/:id", r.catalogHandler.GetCategory)
		storeGroup.POST("/categories", r.catalogHandler.CreateCategory, admin...)
		storeGroup.DELETE("/categories/:id", r.catalogHandler.DeleteCategory, admin...)

		storeGroup.GET("/products", r.catalogHandler.ListProducts)
		storeGroup.GET("/products/:id", r.catalogHandler.GetProduct)
		storeGroup.POST("/products", r.catalogHandler.CreateProduct, admin...)
		storeGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct, admin...)
	}

	basketGroup := e.Group("/basket", verified...)
	{
		basketGroup.GET("", r.basketHandler.Full)
		basketGroup.DELETE("", r.basketHandler.Clear)
		basketGroup.POST("/items/:productId", r.basketHandler.Add)
		basketGroup.PATCH("/items/:productId", r.basketHandler.UpdateQuantity)
		basketGroup.DELETE("/items/:productId", r.basketHandler.Remove)
	}

	orderGroup := e.Group("/order", verified...)
	{
		orderGroup.POST("/create", r.orderHandler.Create)
		orderGroup.GET("/mine", r.orderHandler.ListMine)

		// Admin checks run after the verified check inherited from the group.
		orderGroup.GET("/all", r.orderHandler.ListAll, r.authMiddleware.RequireAdmin)
		orderGroup.PUT("/status", r.orderHandler.UpdateStatus, r.authMiddleware.RequireAdmin)
	}
}
