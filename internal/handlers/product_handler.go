package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/models"
	"storefront-api/internal/services"
)

type ProductHandler struct {
	products *services.ProductService
}

func NewProductHandler(products *services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
		return
	}

	product, err := h.products.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":      "Product successfully created!",
		"savedProduct": product,
	})
}

// GET /products/all
func (h *ProductHandler) ListAll(c *gin.Context) {
	products, err := h.products.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if len(products) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No products found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GET /products
func (h *ProductHandler) ListActive(c *gin.Context) {
	products, err := h.products.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if len(products) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No active products found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GET /products/:productId
func (h *ProductHandler) GetByID(c *gin.Context) {
	product, err := h.products.GetByID(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// PATCH /products/:productId/update
func (h *ProductHandler) Update(c *gin.Context) {
	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
		return
	}

	product, err := h.products.Update(c.Request.Context(), c.Param("productId"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Product updated successfully!",
		"updatedProduct": product,
	})
}

// PATCH /products/:productId/archive
func (h *ProductHandler) Archive(c *gin.Context) {
	product, err := h.products.Archive(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Product successfully archived",
		"archivedProduct": product,
	})
}

// PATCH /products/:productId/activate
func (h *ProductHandler) Activate(c *gin.Context) {
	product, err := h.products.Activate(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":          "Product successfully activated",
		"activatedProduct": product,
	})
}

// POST /products/search-by-name
func (h *ProductHandler) SearchByName(c *gin.Context) {
	var in struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
		return
	}

	products, err := h.products.SearchByName(c.Request.Context(), in.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// POST /products/search-by-price
func (h *ProductHandler) SearchByPrice(c *gin.Context) {
	var in services.PriceRangeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
		return
	}

	products, err := h.products.SearchByPrice(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}
