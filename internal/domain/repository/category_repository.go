// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the operations for category persistence.
// Categories form a tree through their parent reference; deleting a category
// cascades to its whole subtree.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Category, error)

	// FindRoots retrieves all categories without a parent.
	FindRoots(ctx context.Context) ([]*entity.Category, error)

	// FindChildren retrieves the direct children of a category.
	FindChildren(ctx context.Context, id uint) ([]*entity.Category, error)

	// FindByProduct retrieves all categories a product is linked to.
	FindByProduct(ctx context.Context, productID uint) ([]*entity.Category, error)

	// Ancestors walks the parent chain from the category to its root,
	// nearest parent first. A chain that does not terminate yields the
	// tree-cycle error.
	Ancestors(ctx context.Context, id uint) ([]*entity.Category, error)

	// Descendants collects every category whose parent chain includes the
	// given ID. A chain that does not terminate yields the tree-cycle error.
	Descendants(ctx context.Context, id uint) ([]*entity.Category, error)

	// Update modifies an existing category. Parent reassignment is validated
	// for acyclicity before the write.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category and cascades to its child categories.
	Delete(ctx context.Context, id uint) error
}
