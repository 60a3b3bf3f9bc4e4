package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-api/internal/models"
)

type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(collection *mongo.Collection) *CartRepository {
	return &CartRepository{collection: collection}
}

func (r *CartRepository) FindByUser(ctx context.Context, userID string) (*models.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, findTimeout)
	defer cancel()

	var cart models.Cart
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrCartNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "finding cart")
	}
	return &cart, nil
}

// Save writes the whole cart document, creating it when absent. The document
// overwrite is the unit of atomicity; concurrent writers are last-write-wins.
func (r *CartRepository) Save(ctx context.Context, cart *models.Cart) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	cart.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"userId": cart.UserID}, cart, opts)
	return errors.Wrap(err, "saving cart")
}

func (r *CartRepository) Delete(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID})
	return errors.Wrap(err, "deleting cart")
}
