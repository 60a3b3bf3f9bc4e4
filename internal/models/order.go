package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatusPending is the only status this system assigns; no further
// transitions are implemented.
const OrderStatusPending = "Pending"

// OrderItem is a snapshot of a cart line fixed at checkout.
type OrderItem struct {
	ProductID string  `json:"productId" bson:"productId"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Subtotal  float64 `json:"subtotal" bson:"subtotal"`
}

// Order is the immutable record produced by checkout. It is never mutated or
// deleted once written.
type Order struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID          string             `json:"userId" bson:"userId"`
	ProductsOrdered []OrderItem        `json:"productsOrdered" bson:"productsOrdered"`
	TotalPrice      float64            `json:"totalPrice" bson:"totalPrice"`
	Status          string             `json:"status" bson:"status"`
	OrderedOn       time.Time          `json:"orderedOn" bson:"orderedOn"`
}
