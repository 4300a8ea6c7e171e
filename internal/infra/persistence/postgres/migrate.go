package postgres

import (
	"context"

	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate materializes the table layout from the persistence models:
// users, categories, products, products_categories, orders, carts and
// cart_items, including the cascade foreign keys, unique indexes and check
// constraints the models declare. AutoMigrate only adds missing pieces, so
// running it against an existing schema is safe.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.OrderModel{},
		&model.CartModel{},
		&model.CartItemModel{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
