package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/auth"
	"storefront-api/internal/services"
)

type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// POST /orders/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	claims := auth.CurrentClaims(c)

	order, err := h.orders.Checkout(c.Request.Context(), claims.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Checkout successful",
		"savedOrder": order,
	})
}

// GET /orders/my-orders
func (h *OrderHandler) MyOrders(c *gin.Context) {
	claims := auth.CurrentClaims(c)

	orders, err := h.orders.ListMine(c.Request.Context(), claims.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(orders) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "User has no orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GET /orders/all-orders
func (h *OrderHandler) AllOrders(c *gin.Context) {
	orders, err := h.orders.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if len(orders) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No orders found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
