package service

import (
	"context"
	"sync"

	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/repository"
	"github.com/TemiKayode/wumikay-ventures/pkg/apperror"
)

// CartService keeps one in-progress cart per user. Carts live in memory
// only; a restart clears them. Nothing in the product catalog changes
// until checkout.
type CartService struct {
	mu          sync.RWMutex
	carts       map[uint]*entity.Cart
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(productRepo repository.ProductRepository) *CartService {
	return &CartService{
		carts:       make(map[uint]*entity.Cart),
		productRepo: productRepo,
	}
}

// GetCart returns a snapshot of the user's cart. Users without a cart
// get an empty one.
func (s *CartService) GetCart(userID uint) *entity.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[userID]
	if !ok {
		return entity.NewCart()
	}
	return cart.Clone()
}

// AddItem adds one unit of a product to the user's cart. A line already
// holding the product has its quantity incremented instead.
func (s *CartService) AddItem(ctx context.Context, userID, productID uint) (*entity.Cart, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	if product.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Product is out of stock")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		cart = entity.NewCart()
		s.carts[userID] = cart
	}
	cart.AddItem(product)
	return cart.Clone(), nil
}

// SetQuantity sets the quantity of a cart line. Zero or less removes the
// line. A product not in the cart is left alone.
func (s *CartService) SetQuantity(userID, productID uint, quantity int) *entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return entity.NewCart()
	}
	cart.SetQuantity(productID, quantity)
	return cart.Clone()
}

// RemoveItem removes a product's line from the user's cart.
func (s *CartService) RemoveItem(userID, productID uint) *entity.Cart {
	return s.SetQuantity(userID, productID, 0)
}

// Clear empties the user's cart.
func (s *CartService) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Snapshot returns a deep copy of the user's cart for checkout, so that
// concurrent cart edits cannot alter an in-flight order.
func (s *CartService) Snapshot(userID uint) *entity.Cart {
	return s.GetCart(userID)
}
