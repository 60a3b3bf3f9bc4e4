package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/auth"
	"storefront-api/internal/models"
	"storefront-api/internal/services"
)

type cartRequest struct {
	CartItems []services.CartItemInput `json:"cartItems"`
}

type CartHandler struct {
	carts *services.CartService
}

func NewCartHandler(carts *services.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// GET /cart
func (h *CartHandler) Get(c *gin.Context) {
	claims := auth.CurrentClaims(c)

	cart, err := h.carts.Get(c.Request.Context(), claims.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// POST /cart/add-to-cart
func (h *CartHandler) Add(c *gin.Context) {
	var in cartRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
		return
	}

	claims := auth.CurrentClaims(c)
	cart, err := h.carts.AddItems(c.Request.Context(), claims.ID, in.CartItems)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Products added to the cart successfully",
		"updatedCart": cart,
	})
}

// PATCH /cart/update-cart-quantity
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var in cartRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
		return
	}

	claims := auth.CurrentClaims(c)
	cart, err := h.carts.UpdateQuantities(c.Request.Context(), claims.ID, in.CartItems)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Cart quantity updated successfully",
		"updatedCart": cart,
	})
}

// PATCH /cart/:productId/remove-from-cart
func (h *CartHandler) Remove(c *gin.Context) {
	claims := auth.CurrentClaims(c)

	cart, err := h.carts.RemoveItem(c.Request.Context(), claims.ID, c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Product deleted successfully",
		"updatedCart": cart,
	})
}

// PUT /cart/clear-cart
func (h *CartHandler) Clear(c *gin.Context) {
	claims := auth.CurrentClaims(c)

	cart, err := h.carts.Clear(c.Request.Context(), claims.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Cart cleared successfully",
		"clearedCart": cart,
	})
}
