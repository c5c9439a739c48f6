package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/farmlink-ke/farm_market/internal/handlers"
)

type Deps struct {
	UserHandler    *handlers.UserHandler
	FarmerHandler  *handlers.FarmerHandler
	ProductHandler *handlers.ProductHandler
	OrderHandler   *handlers.OrderHandler
	PaymentHandler *handlers.PaymentHandler
	ReviewHandler  *handlers.ReviewHandler
	ChatHandler    *handlers.ChatHandler
	SearchHandler  *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.UserHandler.Register)
	v1.POST("/login", d.UserHandler.Login)

	users := v1.Group("/users")
	users.GET("/:id", d.UserHandler.GetUser)
	users.DELETE("/:id", d.UserHandler.DeleteUser)
	users.GET("/:id/orders", d.UserHandler.ListOrders)
	users.GET("/:id/reviews", d.UserHandler.ListReviews)

	farmers := v1.Group("/farmers")
	farmers.POST("", d.FarmerHandler.CreateFarmer)
	farmers.GET("/:id", d.FarmerHandler.GetFarmer)
	farmers.PATCH("/:id", d.FarmerHandler.PatchFarmer)
	farmers.DELETE("/:id", d.FarmerHandler.DeleteFarmer)
	farmers.GET("/:id/products", d.FarmerHandler.ListProducts)

	products := v1.Group("/products")
	products.POST("", d.ProductHandler.CreateProduct)
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.PATCH("/:id", d.ProductHandler.PatchProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)
	products.GET("/:id/reviews", d.ReviewHandler.ListProductReviews)

	orders := v1.Group("/orders")
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.PATCH("/:id", d.OrderHandler.PatchOrder)
	orders.POST("/:id/products", d.OrderHandler.AddProduct)
	orders.GET("/:id/products", d.OrderHandler.ListProducts)
	orders.GET("/:id/payments", d.OrderHandler.ListPayments)

	payments := v1.Group("/payments")
	payments.POST("", d.PaymentHandler.CreatePayment)
	payments.GET("/:id", d.PaymentHandler.GetPayment)

	reviews := v1.Group("/reviews")
	reviews.POST("", d.ReviewHandler.CreateReview)
	reviews.GET("/:id", d.ReviewHandler.GetReview)
	reviews.DELETE("/:id", d.ReviewHandler.DeleteReview)

	messages := v1.Group("/messages")
	messages.POST("", d.ChatHandler.SendMessage)
	messages.GET("/:a/:b", d.ChatHandler.GetConversation)

	v1.GET("/search", d.SearchHandler.Search)
}
