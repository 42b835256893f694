package routes

import (
	"ordering-service/controllers"
	"ordering-service/middleware"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Checkout *controllers.CheckoutController
	Webhook  *controllers.WebhookController
	Orders   *controllers.OrderController
	Products *controllers.ProductController
}

// RegisterRoutes sets up the public API plus the admin-gated catalog
// mutations. The Stripe webhook stays unauthenticated; its authenticity
// check is the signature.
func RegisterRoutes(r *gin.Engine, c Controllers, adminToken string) {
	api := r.Group("/api")

	api.POST("/checkout", c.Checkout.CreateCheckoutSession)
	api.POST("/webhooks/stripe", c.Webhook.StripeWebhook)
	api.GET("/orders/:id", c.Orders.GetOrder)

	api.GET("/products", c.Products.ListProducts)
	api.GET("/products/:id", c.Products.GetProduct)

	admin := api.Group("/products")
	admin.Use(middleware.AdminAuth(adminToken))
	admin.POST("", c.Products.CreateProduct)
	admin.PATCH("/:id", c.Products.UpdateProduct)
	admin.DELETE("/:id", c.Products.DeleteProduct)
}
