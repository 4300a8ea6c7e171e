// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the operations for product persistence.
// Products form a tree through their parent reference and carry a
// many-to-many link to categories. Deleting a product cascades to its
// subtree and to any cart item referencing it.
type ProductRepository interface {
	// Create persists a new product together with its category links.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by its unique ID, including its
	// linked categories.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// FindByCategory retrieves all products linked to a category.
	FindByCategory(ctx context.Context, categoryID uint) ([]*entity.Product, error)

	// FindChildren retrieves the direct children of a product.
	FindChildren(ctx context.Context, id uint) ([]*entity.Product, error)

	// Ancestors walks the parent chain from the product to its root,
	// nearest parent first. A chain that does not terminate yields the
	// tree-cycle error.
	Ancestors(ctx context.Context, id uint) ([]*entity.Product, error)

	// Descendants collects every product whose parent chain includes the
	// given ID. A chain that does not terminate yields the tree-cycle error.
	Descendants(ctx context.Context, id uint) ([]*entity.Product, error)

	// Update modifies an existing product. Parent reassignment is validated
	// for acyclicity before the write. Category links are not touched.
	Update(ctx context.Context, product *entity.Product) error

	// ReplaceCategories replaces the product's category links with the given
	// set of category IDs.
	ReplaceCategories(ctx context.Context, productID uint, categoryIDs []uint) error

	// Delete removes a product and cascades to its child products and any
	// cart items referencing it.
	Delete(ctx context.Context, id uint) error
}
