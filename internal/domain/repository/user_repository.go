// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain layer and the
// infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
// Deleting a user cascades to their orders and cart in the store.
type UserRepository interface {
	// Create persists a new user. RegistrationDate is assigned by the store.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update modifies an existing user. Attempts to change RegistrationDate
	// are rejected.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user and, through the store's cascade rules, their
	// orders, cart, and cart items.
	Delete(ctx context.Context, id uint) error
}
