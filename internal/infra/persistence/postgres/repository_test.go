package postgres

import (
	"context"
	"os"
	"sync"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// The store-backed tests run against a real PostgreSQL instance addressed by
// TEST_DATABASE_URL and are skipped when it is not set. The schema is
// migrated once per run; each test starts and ends with empty tables.
var (
	sharedTestDB  *gorm.DB
	sharedTestErr error
	openTestOnce  sync.Once
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping store-backed tests")
	}

	openTestOnce.Do(func() {
		db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
			SkipDefaultTransaction: true,
		})
		if err != nil {
			sharedTestErr = err

			return
		}

		sharedTestErr = Migrate(context.Background(), db)
		sharedTestDB = db
	})
	require.NoError(t, sharedTestErr)

	cleanupTables(t, sharedTestDB)
	t.Cleanup(func() {
		cleanupTables(t, sharedTestDB)
	})

	return sharedTestDB
}

// cleanupTables empties every table, children before parents so the deletes
// never trip a foreign key.
func cleanupTables(t *testing.T, db *gorm.DB) {
	t.Helper()

	for _, table := range []string{
		"cart_items",
		"carts",
		"orders",
		"products_categories",
		"products",
		"categories",
		"users",
	} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}
}

// --- Fixture helpers ---

func createTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		Name:     "Ada Lovelace",
		Email:    email,
		Password: "plain-secret",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	require.NotZero(t, user.ID)

	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, title string, parentID *uint) *entity.Category {
	t.Helper()

	category := &entity.Category{
		Title:    title,
		ParentID: parentID,
	}
	require.NoError(t, NewCategoryRepository(db).Create(context.Background(), category))
	require.NotZero(t, category.ID)

	return category
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, parentID *uint, categories ...*entity.Category) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name:       name,
		ParentID:   parentID,
		ImageURL:   "products/" + name + ".png",
		Stock:      10,
		Price:      19.99,
		Categories: categories,
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))
	require.NotZero(t, product.ID)

	return product
}

func createTestOrder(t *testing.T, db *gorm.DB, userID uint) *entity.Order {
	t.Helper()

	order := &entity.Order{
		UserID:      userID,
		Status:      entity.OrderStatusPending,
		TotalAmount: decimal.NewFromFloat(99.99),
	}
	require.NoError(t, NewOrderRepository(db).Create(context.Background(), order))
	require.NotZero(t, order.ID)

	return order
}

func createTestCart(t *testing.T, db *gorm.DB, userID uint) *entity.Cart {
	t.Helper()

	cart := &entity.Cart{UserID: userID}
	require.NoError(t, NewCartRepository(db).CreateCart(context.Background(), cart))
	require.NotZero(t, cart.ID)

	return cart
}

func addTestItem(t *testing.T, db *gorm.DB, cartID, productID uint, quantity int) *entity.CartItem {
	t.Helper()

	item := &entity.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}
	require.NoError(t, NewCartRepository(db).AddItem(context.Background(), item))
	require.NotZero(t, item.ID)

	return item
}

func mustFindUser(t *testing.T, repo repository.UserRepository, id uint) *entity.User {
	t.Helper()

	user, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	return user
}
