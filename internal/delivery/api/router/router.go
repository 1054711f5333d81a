// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"haatbazar/internal/delivery/api/middleware"
	"haatbazar/internal/delivery/api/router/handler"
	"haatbazar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	BuyerHandler       *handler.BuyerHandler
	SellerHandler      *handler.SellerHandler
	ProductHandler     *handler.ProductHandler
	OrderHandler       *handler.OrderHandler
	TransactionHandler *handler.TransactionHandler
	ReviewHandler      *handler.ReviewHandler
	ComplaintHandler   *handler.ComplaintHandler
	AdminHandler       *handler.AdminHandler
	StatisticsHandler  *handler.StatisticsHandler
	UploadHandler      *handler.UploadHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth           *handler.AuthHandler
	buyers         *handler.BuyerHandler
	sellers        *handler.SellerHandler
	products       *handler.ProductHandler
	orders         *handler.OrderHandler
	transactions   *handler.TransactionHandler
	reviews        *handler.ReviewHandler
	complaints     *handler.ComplaintHandler
	admin          *handler.AdminHandler
	statistics     *handler.StatisticsHandler
	uploads        *handler.UploadHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:           params.AuthHandler,
		buyers:         params.BuyerHandler,
		sellers:        params.SellerHandler,
		products:       params.ProductHandler,
		orders:         params.OrderHandler,
		transactions:   params.TransactionHandler,
		reviews:        params.ReviewHandler,
		complaints:     params.ComplaintHandler,
		admin:          params.AdminHandler,
		statistics:     params.StatisticsHandler,
		uploads:        params.UploadHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/uploads/:key", r.uploads.ServeUpload)

	api := e.Group("/api")
	api.GET("/statistics", r.statistics.PublicStatistics)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/buyer/register", r.auth.RegisterBuyer)
		authGroup.POST("/seller/register", r.auth.RegisterSeller)
		authGroup.POST("/buyer/login", r.auth.LoginBuyer)
		authGroup.POST("/seller/login", r.auth.LoginSeller)
		authGroup.POST("/admin/login", r.auth.LoginAdmin)
	}

	buyersGroup := api.Group("/buyers")
	{
		buyersGroup.GET("", r.buyers.ListBuyers)
		buyersGroup.GET("/:id", r.buyers.GetBuyer)
		buyersGroup.PUT("/:id", r.buyers.UpdateBuyer)
		buyersGroup.GET("/:buyerId/orders", r.buyers.ListOrders)
		buyersGroup.GET("/:buyerId/reviews", r.buyers.ListReviews)
	}

	sellersGroup := api.Group("/sellers")
	{
		sellersGroup.GET("", r.sellers.ListSellers)
		sellersGroup.GET("/:id", r.sellers.GetSeller)
		sellersGroup.PUT("/:id", r.sellers.UpdateSeller)
		sellersGroup.GET("/:sellerId/products", r.sellers.ListProducts)
		sellersGroup.GET("/:sellerId/orders", r.sellers.ListOrders)
	}

	productsGroup := api.Group("/products")
	{
		productsGroup.GET("", r.products.ListProducts)
		productsGroup.POST("", r.products.CreateProduct)
		productsGroup.GET("/:id", r.products.GetProduct)
		productsGroup.PUT("/:id", r.products.UpdateProduct)
		productsGroup.DELETE("/:id", r.products.DeleteProduct)
		productsGroup.GET("/:productId/reviews", r.products.ListReviews)
	}

	ordersGroup := api.Group("/orders")
	{
		ordersGroup.POST("", r.orders.PlaceOrder)
		ordersGroup.GET("/:id", r.orders.GetOrder)
		ordersGroup.GET("/:id/qr", r.orders.GetReceiptQR)
		ordersGroup.PUT("/:id/status", r.orders.UpdateOrderStatus)
	}

	transactionsGroup := api.Group("/transactions")
	{
		transactionsGroup.POST("", r.transactions.CreateTransaction)
		transactionsGroup.PUT("/:id/status", r.transactions.UpdateTransactionStatus)
		transactionsGroup.GET("/buyer/:buyerId", r.transactions.BuyerReport)
		transactionsGroup.GET("/seller/:sellerId", r.transactions.SellerReport)
	}

	reviewsGroup := api.Group("/reviews")
	{
		reviewsGroup.POST("", r.reviews.CreateReview)
		reviewsGroup.GET("/check", r.reviews.CheckReview)
	}

	api.POST("/buyer-complaints", r.complaints.FileBuyerComplaint)
	api.GET("/buyer-complaints", r.complaints.ListBuyerComplaints)
	api.POST("/seller-complaints", r.complaints.FileSellerComplaint)
	api.GET("/seller-complaints", r.complaints.ListSellerComplaints)

	complaintsGroup := api.Group("/complaints")
	{
		complaintsGroup.POST("/buyer/:buyerId", r.complaints.FileComplaintAsBuyer)
		complaintsGroup.GET("/buyer/:buyerId", r.complaints.FiledByBuyer)
		complaintsGroup.GET("/seller/:sellerId", r.complaints.FiledBySeller)
	}

	// Admin routes require an admin access token
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/dashboard", r.admin.Dashboard)
		adminGroup.PUT("/buyers/:buyerId/status", r.admin.UpdateBuyerStatus)
		adminGroup.PUT("/sellers/:sellerId/status", r.admin.UpdateSellerStatus)
		adminGroup.PUT("/buyer-complaints/:id", r.complaints.RespondToBuyerComplaint)
		adminGroup.PUT("/seller-complaints/:id", r.complaints.RespondToSellerComplaint)
	}
}
