// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when a cart is not found.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a cart item is not found.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrDuplicateCart is returned when the user already has a cart.
	ErrDuplicateCart = errors.New("user already has a cart")
)

// CartRepository defines the operations for cart and cart item persistence.
// Deleting a cart cascades to its items.
type CartRepository interface {
	// CreateCart persists a new cart. Each user may have at most one.
	CreateCart(ctx context.Context, cart *entity.Cart) error

	// FindCartByID retrieves a cart by its unique ID, including its items.
	FindCartByID(ctx context.Context, id uint) (*entity.Cart, error)

	// FindCartByUser retrieves the cart belonging to a user.
	FindCartByUser(ctx context.Context, userID uint) (*entity.Cart, error)

	// DeleteCart removes a cart and cascades to its items.
	DeleteCart(ctx context.Context, id uint) error

	// AddItem persists a new cart item. Quantity must be >= 1.
	AddItem(ctx context.Context, item *entity.CartItem) error

	// FindItemByID retrieves a cart item by its unique ID.
	FindItemByID(ctx context.Context, id uint) (*entity.CartItem, error)

	// FindItemsByCart retrieves all items in a cart.
	FindItemsByCart(ctx context.Context, cartID uint) ([]*entity.CartItem, error)

	// UpdateItem modifies an existing cart item.
	UpdateItem(ctx context.Context, item *entity.CartItem) error

	// DeleteItem removes a cart item.
	DeleteItem(ctx context.Context, id uint) error
}
