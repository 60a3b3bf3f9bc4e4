package services

import (
	"context"
	"errors"

	"storefront-api/internal/models"
)

// CartStore is the persistence surface the cart engine needs. Carts are
// written as whole documents; the store's per-document write is the unit of
// atomicity.
type CartStore interface {
	FindByUser(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, userID string) error
}

// ProductStore is the product lookup the cart engine performs when pricing a
// line item.
type ProductStore interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
}

// CartItemInput is one requested cart mutation entry.
type CartItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartService maintains the one mutable cart each user owns. Every mutation
// keeps TotalPrice equal to the sum of the item subtotals by applying
// incremental deltas: the old subtotal is subtracted before the new one is
// added, never re-summed from scratch.
type CartService struct {
	carts    CartStore
	products ProductStore
}

func NewCartService(carts CartStore, products ProductStore) *CartService {
	return &CartService{carts: carts, products: products}
}

func (s *CartService) Get(ctx context.Context, userID string) (*models.Cart, error) {
	return s.carts.FindByUser(ctx, userID)
}

// AddItems merges the requested items into the user's cart, creating the cart
// on first use. An item already in the cart has the incoming quantity and
// subtotal added onto it; a new item is appended.
func (s *CartService) AddItems(ctx context.Context, userID string, items []CartItemInput) (*models.Cart, error) {
	if err := validateItems(items, false); err != nil {
		return nil, err
	}

	cart, err := s.carts.FindByUser(ctx, userID)
	if errors.Is(err, models.ErrCartNotFound) {
		cart = &models.Cart{UserID: userID, CartItems: []models.CartItem{}}
	} else if err != nil {
		return nil, err
	}

	for _, in := range items {
		product, err := s.products.FindByID(ctx, in.ProductID)
		if err != nil {
			return nil, err
		}

		subtotal := product.Price * float64(in.Quantity)

		if idx := cart.ItemIndex(in.ProductID); idx >= 0 {
			cart.CartItems[idx].Quantity += in.Quantity
			cart.CartItems[idx].Subtotal += subtotal
		} else {
			cart.CartItems = append(cart.CartItems, models.CartItem{
				ProductID: in.ProductID,
				Quantity:  in.Quantity,
				Subtotal:  subtotal,
			})
		}

		cart.TotalPrice += subtotal
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantities replaces quantities rather than merging them. A quantity
// of zero or less removes the item; an item not yet in the cart is added only
// when the quantity is positive. Subtotals are recomputed from the current
// product price.
func (s *CartService) UpdateQuantities(ctx context.Context, userID string, items []CartItemInput) (*models.Cart, error) {
	if err := validateItems(items, true); err != nil {
		return nil, err
	}

	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, in := range items {
		product, err := s.products.FindByID(ctx, in.ProductID)
		if err != nil {
			return nil, err
		}

		subtotal := product.Price * float64(in.Quantity)
		idx := cart.ItemIndex(in.ProductID)

		switch {
		case idx < 0 && in.Quantity > 0:
			cart.CartItems = append(cart.CartItems, models.CartItem{
				ProductID: in.ProductID,
				Quantity:  in.Quantity,
				Subtotal:  subtotal,
			})
			cart.TotalPrice += subtotal
		case idx < 0:
			// Nothing to remove.
		case in.Quantity <= 0:
			cart.TotalPrice -= cart.CartItems[idx].Subtotal
			cart.CartItems = append(cart.CartItems[:idx], cart.CartItems[idx+1:]...)
		default:
			// Subtract the old subtotal before adding the new one.
			cart.TotalPrice -= cart.CartItems[idx].Subtotal
			cart.CartItems[idx].Quantity = in.Quantity
			cart.CartItems[idx].Subtotal = subtotal
			cart.TotalPrice += subtotal
		}
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem drops every entry referencing productID and subtracts the
// removed subtotals from the total. At most one entry matches as long as the
// one-item-per-product invariant holds.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := cart.CartItems[:0]
	removed := 0
	for _, item := range cart.CartItems {
		if item.ProductID == productID {
			cart.TotalPrice -= item.Subtotal
			removed++
			continue
		}
		kept = append(kept, item)
	}

	if removed == 0 {
		return nil, models.ErrItemNotInCart
	}
	cart.CartItems = kept

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the cart and zeroes the total.
func (s *CartService) Clear(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(cart.CartItems) == 0 {
		return nil, models.ErrEmptyCart
	}

	cart.CartItems = []models.CartItem{}
	cart.TotalPrice = 0

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// validateItems rejects empty batches and entries without a product id.
// Quantities must be positive unless the caller treats zero as a removal.
func validateItems(items []CartItemInput, allowNonPositive bool) error {
	if len(items) == 0 {
		return models.ErrInvalidInput
	}
	for _, in := range items {
		if in.ProductID == "" {
			return models.ErrInvalidInput
		}
		if !allowNonPositive && in.Quantity <= 0 {
			return models.ErrInvalidInput
		}
	}
	return nil
}
