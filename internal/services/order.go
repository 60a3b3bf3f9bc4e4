package services

import (
	"context"

	"storefront-api/internal/models"
)

// OrderStore persists checkout results. Orders are write-once.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByUser(ctx context.Context, userID string) ([]models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
}

// OrderService converts a cart into an immutable order.
type OrderService struct {
	orders OrderStore
	carts  CartStore
}

func NewOrderService(orders OrderStore, carts CartStore) *OrderService {
	return &OrderService{orders: orders, carts: carts}
}

// Checkout snapshots the user's cart into an order and removes the cart. The
// total price is re-derived from the item subtotals as a cross-check against
// the cart's running total. The order is written before the cart is deleted:
// a failure between the two writes leaves a stale cart behind rather than
// losing the user's items without a record.
func (s *OrderService) Checkout(ctx context.Context, userID string) (*models.Order, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.CartItems) == 0 {
		return nil, models.ErrEmptyCart
	}

	var total float64
	items := make([]models.OrderItem, 0, len(cart.CartItems))
	for _, item := range cart.CartItems {
		total += item.Subtotal
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		})
	}

	order := &models.Order{
		UserID:          userID,
		ProductsOrdered: items,
		TotalPrice:      total,
		Status:          models.OrderStatusPending,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	if err := s.carts.Delete(ctx, userID); err != nil {
		return nil, err
	}
	return order, nil
}

// ListMine returns the acting user's orders, oldest first as stored.
func (s *OrderService) ListMine(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}

// ListAll returns every order in the system.
func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.orders.FindAll(ctx)
}
