package models

import "errors"

// Domain errors. Handlers map these to HTTP statuses; anything else that
// bubbles up from the store layer is treated as an internal server error.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrInvalidMobile = errors.New("invalid mobile number")
	ErrShortPassword = errors.New("password must be at least 8 characters")
	ErrInvalidPrice  = errors.New("price must be a non-negative number")

	ErrUserNotFound     = errors.New("user does not exist")
	ErrDuplicateEmail   = errors.New("email already in use")
	ErrPasswordMismatch = errors.New("email and password do not match")
	ErrAlreadyAdmin     = errors.New("user is already an admin")

	ErrProductNotFound  = errors.New("product does not exist")
	ErrDuplicateName    = errors.New("product already exists")
	ErrAlreadyArchived  = errors.New("product is already archived")
	ErrAlreadyActivated = errors.New("product is already activated")
	ErrNoProductsFound  = errors.New("no products found matching the price range")

	ErrCartNotFound  = errors.New("cart not found for the user")
	ErrEmptyCart     = errors.New("cart has no items")
	ErrItemNotInCart = errors.New("product not found in cart")
)
