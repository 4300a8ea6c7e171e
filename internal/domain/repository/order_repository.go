// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	// Create persists a new order. OrderDate is assigned by the store and
	// Status must be one of the enumerated values.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Order, error)

	// FindByUser retrieves all orders placed by a user.
	FindByUser(ctx context.Context, userID uint) ([]*entity.Order, error)

	// Update modifies an existing order. Attempts to change OrderDate are
	// rejected.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order.
	Delete(ctx context.Context, id uint) error
}
