package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront-api/internal/models"
)

const (
	findTimeout  = 3 * time.Second
	writeTimeout = 5 * time.Second
	queryTimeout = 10 * time.Second
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(collection *mongo.Collection) *ProductRepository {
	return &ProductRepository{collection: collection}
}

// Create inserts a new product. The caller is responsible for the duplicate
// name check; products default to active.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	product.ID = primitive.NewObjectID()
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	product.IsActive = true

	_, err := r.collection.InsertOne(ctx, product)
	return errors.Wrap(err, "inserting product")
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, findTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrProductNotFound
	}

	var product models.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "finding product by id")
	}
	return &product, nil
}

// FindByName matches the name exactly, case sensitive.
func (r *ProductRepository) FindByName(ctx context.Context, name string) ([]models.Product, error) {
	return r.find(ctx, bson.M{"name": name})
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *ProductRepository) FindActive(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{"isActive": true})
}

func (r *ProductRepository) FindByPriceRange(ctx context.Context, min, max float64) ([]models.Product, error) {
	return r.find(ctx, bson.M{"price": bson.M{"$gte": min, "$lte": max}})
}

// Update overwrites the writable fields of a product.
func (r *ProductRepository) Update(ctx context.Context, id string, name, description string, price float64) (*models.Product, error) {
	update := bson.M{
		"name":        name,
		"description": description,
		"price":       price,
	}
	return r.applyUpdate(ctx, id, update)
}

// SetActive flips the activation flag. The caller guards idempotency.
func (r *ProductRepository) SetActive(ctx context.Context, id string, active bool) (*models.Product, error) {
	return r.applyUpdate(ctx, id, bson.M{"isActive": active})
}

func (r *ProductRepository) applyUpdate(ctx context.Context, id string, update bson.M) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrProductNotFound
	}

	update["updatedAt"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		return nil, errors.Wrap(err, "updating product")
	}
	if result.MatchedCount == 0 {
		return nil, models.ErrProductNotFound
	}

	var product models.Product
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product); err != nil {
		return nil, errors.Wrap(err, "reloading updated product")
	}
	return &product, nil
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "finding products")
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, errors.Wrap(err, "decoding products")
	}
	return products, nil
}
