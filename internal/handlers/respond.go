package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront-api/internal/models"
)

// errorStatus maps each domain error to its response status. Anything not
// listed is a store failure or a bug and becomes a 500.
var errorStatus = map[error]int{
	models.ErrInvalidInput:  http.StatusBadRequest,
	models.ErrInvalidEmail:  http.StatusBadRequest,
	models.ErrInvalidMobile: http.StatusBadRequest,
	models.ErrShortPassword: http.StatusBadRequest,
	models.ErrInvalidPrice:  http.StatusBadRequest,

	models.ErrPasswordMismatch: http.StatusUnauthorized,

	models.ErrUserNotFound:    http.StatusNotFound,
	models.ErrProductNotFound: http.StatusNotFound,
	models.ErrCartNotFound:    http.StatusNotFound,
	models.ErrEmptyCart:       http.StatusNotFound,
	models.ErrItemNotInCart:   http.StatusNotFound,
	models.ErrNoProductsFound: http.StatusNotFound,

	models.ErrDuplicateEmail:   http.StatusConflict,
	models.ErrDuplicateName:    http.StatusConflict,
	models.ErrAlreadyArchived:  http.StatusConflict,
	models.ErrAlreadyActivated: http.StatusConflict,
	models.ErrAlreadyAdmin:     http.StatusConflict,
}

func respondError(c *gin.Context, err error) {
	for sentinel, status := range errorStatus {
		if errors.Is(err, sentinel) {
			c.JSON(status, gin.H{"error": sentinel.Error()})
			return
		}
	}

	logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
