package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-api/internal/models"
)

// --- In-memory stores ---

type memCartStore struct {
	carts     map[string]*models.Cart
	saveErr   error
	deleteErr error
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: map[string]*models.Cart{}}
}

func (s *memCartStore) FindByUser(_ context.Context, userID string) (*models.Cart, error) {
	cart, ok := s.carts[userID]
	if !ok {
		return nil, models.ErrCartNotFound
	}
	return copyCart(cart), nil
}

func (s *memCartStore) Save(_ context.Context, cart *models.Cart) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	s.carts[cart.UserID] = copyCart(cart)
	return nil
}

func (s *memCartStore) Delete(_ context.Context, userID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.carts, userID)
	return nil
}

// copyCart mimics a document store: callers never share memory with it.
func copyCart(c *models.Cart) *models.Cart {
	dup := *c
	dup.CartItems = append([]models.CartItem(nil), c.CartItems...)
	return &dup
}

type memCatalogStore struct {
	products map[string]*models.Product
}

func newMemCatalogStore() *memCatalogStore {
	return &memCatalogStore{products: map[string]*models.Product{}}
}

func (s *memCatalogStore) add(name string, price float64, active bool) *models.Product {
	p := &models.Product{
		ID:       primitive.NewObjectID(),
		Name:     name,
		Price:    price,
		IsActive: active,
	}
	s.products[p.ID.Hex()] = p
	return p
}

func (s *memCatalogStore) Create(_ context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	product.IsActive = true
	s.products[product.ID.Hex()] = product
	return nil
}

func (s *memCatalogStore) FindByID(_ context.Context, id string) (*models.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	dup := *product
	return &dup, nil
}

func (s *memCatalogStore) FindByName(_ context.Context, name string) ([]models.Product, error) {
	matches := make([]models.Product, 0)
	for _, p := range s.products {
		if p.Name == name {
			matches = append(matches, *p)
		}
	}
	return matches, nil
}

func (s *memCatalogStore) FindAll(_ context.Context) ([]models.Product, error) {
	all := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		all = append(all, *p)
	}
	return all, nil
}

func (s *memCatalogStore) FindActive(_ context.Context) ([]models.Product, error) {
	active := make([]models.Product, 0)
	for _, p := range s.products {
		if p.IsActive {
			active = append(active, *p)
		}
	}
	return active, nil
}

func (s *memCatalogStore) FindByPriceRange(_ context.Context, min, max float64) ([]models.Product, error) {
	matches := make([]models.Product, 0)
	for _, p := range s.products {
		if p.Price >= min && p.Price <= max {
			matches = append(matches, *p)
		}
	}
	return matches, nil
}

func (s *memCatalogStore) Update(_ context.Context, id, name, description string, price float64) (*models.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	product.Name = name
	product.Description = description
	product.Price = price
	dup := *product
	return &dup, nil
}

func (s *memCatalogStore) SetActive(_ context.Context, id string, active bool) (*models.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	product.IsActive = active
	dup := *product
	return &dup, nil
}

type memOrderStore struct {
	orders    []*models.Order
	createErr error
}

func newMemOrderStore() *memOrderStore {
	return &memOrderStore{}
}

func (s *memOrderStore) Create(_ context.Context, order *models.Order) error {
	if s.createErr != nil {
		return s.createErr
	}
	order.ID = primitive.NewObjectID()
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	dup := *order
	dup.ProductsOrdered = append([]models.OrderItem(nil), order.ProductsOrdered...)
	s.orders = append(s.orders, &dup)
	return nil
}

func (s *memOrderStore) FindByUser(_ context.Context, userID string) ([]models.Order, error) {
	matches := make([]models.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			matches = append(matches, *o)
		}
	}
	return matches, nil
}

func (s *memOrderStore) FindAll(_ context.Context) ([]models.Order, error) {
	all := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		all = append(all, *o)
	}
	return all, nil
}

type memUserStore struct {
	users map[string]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]*models.User{}}
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	s.users[user.ID.Hex()] = user
	return nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			dup := *u
			return &dup, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (s *memUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	dup := *user
	return &dup, nil
}

func (s *memUserStore) FindAll(_ context.Context) ([]models.User, error) {
	all := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, *u)
	}
	return all, nil
}

func (s *memUserStore) UpdatePassword(_ context.Context, id, hashed string) error {
	user, ok := s.users[id]
	if !ok {
		return models.ErrUserNotFound
	}
	user.Password = hashed
	return nil
}

func (s *memUserStore) SetAdmin(_ context.Context, id string) error {
	user, ok := s.users[id]
	if !ok {
		return models.ErrUserNotFound
	}
	user.IsAdmin = true
	return nil
}

// --- Collaborator stubs ---

type stubTokenIssuer struct{}

func (stubTokenIssuer) CreateAccessToken(user *models.User) (string, error) {
	return "token:" + user.Email, nil
}

type sentMail struct {
	to      string
	subject string
}

type recordingNotifier struct {
	sent []sentMail
}

func (n *recordingNotifier) Send(to, subject, _ string) {
	n.sent = append(n.sent, sentMail{to: to, subject: subject})
}

// --- Shared assertions ---

// requireTotalConsistent checks the central cart invariant: the running total
// equals the sum of the item subtotals.
func requireTotalConsistent(t *testing.T, cart *models.Cart) {
	t.Helper()
	var sum float64
	for _, item := range cart.CartItems {
		sum += item.Subtotal
	}
	assert.InDelta(t, sum, cart.TotalPrice, 1e-9)
}
