package routes

import (
	"github.com/gin-gonic/gin"

	"storefront-api/internal/auth"
	"storefront-api/internal/handlers"
)

// Handlers bundles the per-area handlers the router wires up.
type Handlers struct {
	Users    *handlers.UserHandler
	Products *handlers.ProductHandler
	Carts    *handlers.CartHandler
	Orders   *handlers.OrderHandler
}

// Register declares every route together with the capability set the access
// gate enforces for it. Authentication always runs before the role check.
func Register(router *gin.Engine, gate *auth.Gate, h Handlers) {
	users := router.Group("/users")
	{
		users.POST("", h.Users.Register)
		users.POST("/login", h.Users.Login)
		users.GET("/details", gate.Require(auth.Authenticated), h.Users.Details)
		users.GET("/all", gate.Require(auth.Authenticated, auth.Admin), h.Users.ListAll)
		users.PATCH("/:userId/set-as-admin", gate.Require(auth.Authenticated, auth.Admin), h.Users.SetAsAdmin)
		users.PATCH("/update-password", gate.Require(auth.Authenticated), h.Users.UpdatePassword)
	}

	products := router.Group("/products")
	{
		products.POST("", gate.Require(auth.Authenticated, auth.Admin), h.Products.Create)
		products.GET("/all", gate.Require(auth.Authenticated, auth.Admin), h.Products.ListAll)
		products.GET("", h.Products.ListActive)
		products.POST("/search-by-name", h.Products.SearchByName)
		products.POST("/search-by-price", h.Products.SearchByPrice)
		products.GET("/:productId", h.Products.GetByID)
		products.PATCH("/:productId/update", gate.Require(auth.Authenticated, auth.Admin), h.Products.Update)
		products.PATCH("/:productId/archive", gate.Require(auth.Authenticated, auth.Admin), h.Products.Archive)
		products.PATCH("/:productId/activate", gate.Require(auth.Authenticated, auth.Admin), h.Products.Activate)
	}

	cart := router.Group("/cart", gate.Require(auth.Authenticated, auth.Customer))
	{
		cart.GET("", h.Carts.Get)
		cart.POST("/add-to-cart", h.Carts.Add)
		cart.PATCH("/update-cart-quantity", h.Carts.UpdateQuantity)
		cart.PATCH("/:productId/remove-from-cart", h.Carts.Remove)
		cart.PUT("/clear-cart", h.Carts.Clear)
	}

	orders := router.Group("/orders")
	{
		orders.POST("/checkout", gate.Require(auth.Authenticated, auth.Customer), h.Orders.Checkout)
		orders.GET("/my-orders", gate.Require(auth.Authenticated, auth.Customer), h.Orders.MyOrders)
		orders.GET("/all-orders", gate.Require(auth.Authenticated, auth.Admin), h.Orders.AllOrders)
	}
}
