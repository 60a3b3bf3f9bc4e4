package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a line entry inside a cart. Subtotal is the unit price at the
// time of the mutation multiplied by the quantity; it is cached on the item
// and is not recomputed when the product's live price changes later.
// A cart holds at most one item per product.
type CartItem struct {
	ProductID string  `json:"productId" bson:"productId"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Subtotal  float64 `json:"subtotal" bson:"subtotal"`
}

// Cart is the single mutable cart a user owns. TotalPrice must equal the sum
// of all item subtotals after every mutation; the cart engine maintains it
// incrementally rather than re-summing.
type Cart struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID     string             `json:"userId" bson:"userId"`
	CartItems  []CartItem         `json:"cartItems" bson:"cartItems"`
	TotalPrice float64            `json:"totalPrice" bson:"totalPrice"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ItemIndex returns the position of the item referencing productID, or -1.
func (c *Cart) ItemIndex(productID string) int {
	for i, item := range c.CartItems {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
