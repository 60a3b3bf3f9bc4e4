package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/auth"
	"storefront-api/internal/models"
	"storefront-api/internal/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// POST /users
func (h *UserHandler) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
		return
	}

	if err := h.users.Register(c.Request.Context(), in); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully!"})
}

// POST /users/login
func (h *UserHandler) Login(c *gin.Context) {
	var in services.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
		return
	}

	token, err := h.users.Login(c.Request.Context(), in)
	if errors.Is(err, models.ErrUserNotFound) {
		// An unknown account on login is an authorization refusal, not a
		// lookup miss.
		c.JSON(http.StatusForbidden, gin.H{"error": models.ErrUserNotFound.Error()})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully logged in!",
		"access":  token,
	})
}

// GET /users/details
func (h *UserHandler) Details(c *gin.Context) {
	claims := auth.CurrentClaims(c)

	user, err := h.users.Details(c.Request.Context(), claims.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GET /users/all
func (h *UserHandler) ListAll(c *gin.Context) {
	users, err := h.users.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// PATCH /users/:userId/set-as-admin
func (h *UserHandler) SetAsAdmin(c *gin.Context) {
	user, err := h.users.PromoteToAdmin(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "User set to Admin successfully",
		"updatedUser": user,
	})
}

// PATCH /users/update-password
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var in struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
		return
	}

	claims := auth.CurrentClaims(c)
	if err := h.users.UpdatePassword(c.Request.Context(), claims.ID, claims.Email, in.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}
