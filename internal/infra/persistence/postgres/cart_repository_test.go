package postgres

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_OneCartPerUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	user := createTestUser(t, db, "ada@example.com")
	createTestCart(t, db, user.ID)

	second := &entity.Cart{UserID: user.ID}
	err := repo.CreateCart(context.Background(), second)
	assert.ErrorIs(t, err, domainerrors.ErrCartAlreadyExists)
}

func TestCartRepository_CreateCartRejectsUnknownUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	cart := &entity.Cart{UserID: 999999}
	err := repo.CreateCart(context.Background(), cart)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartRepository_FindCartByUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	user := createTestUser(t, db, "ada@example.com")
	cart := createTestCart(t, db, user.ID)

	found, err := repo.FindCartByUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, found.ID)

	_, err = repo.FindCartByUser(context.Background(), 999999)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}

func TestCartRepository_AddItemQuantityBounds(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	user := createTestUser(t, db, "ada@example.com")
	cart := createTestCart(t, db, user.ID)
	product := createTestProduct(t, db, "lamp", nil)

	for _, quantity := range []int{0, -1} {
		item := &entity.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: quantity}
		err := repo.AddItem(context.Background(), item)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}

	item := addTestItem(t, db, cart.ID, product.ID, 1)
	assert.NotZero(t, item.ID)
}

func TestCartRepository_AddItemRejectsUnknownReferences(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	user := createTestUser(t, db, "ada@example.com")
	cart := createTestCart(t, db, user.ID)
	product := createTestProduct(t, db, "lamp", nil)

	err := repo.AddItem(context.Background(), &entity.CartItem{CartID: 999999, ProductID: product.ID, Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	err = repo.AddItem(context.Background(), &entity.CartItem{CartID: cart.ID, ProductID: 999999, Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartRepository_FindItemsByCart(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	user := createTestUser(t, db, "ada@example.com")
	cart := createTestCart(t, db, user.ID)
	lamp := createTestProduct(t, db, "lamp", nil)
	chair := createTestProduct(t, db, "chair", nil)

	addTestItem(t, db, cart.ID, lamp.ID, 2)
	addTestItem(t, db, cart.ID, chair.ID, 1)

	items, err := repo.FindItemsByCart(context.Background(), cart.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	found, err := repo.FindCartByID(context.Background(), cart.ID)
	require.NoError(t, err)
	assert.Len(t, found.Items, 2)
}

func TestCartRepository_UpdateItem(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	user := createTestUser(t, db, "ada@example.com")
	cart := createTestCart(t, db, user.ID)
	product := createTestProduct(t, db, "lamp", nil)
	item := addTestItem(t, db, cart.ID, product.ID, 1)

	item.Quantity = 5
	require.NoError(t, repo.UpdateItem(context.Background(), item))

	reloaded, err := repo.FindItemByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, reloaded.Quantity)

	item.Quantity = 0
	err = repo.UpdateItem(context.Background(), item)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartRepository_DeleteItem(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	user := createTestUser(t, db, "ada@example.com")
	cart := createTestCart(t, db, user.ID)
	product := createTestProduct(t, db, "lamp", nil)
	item := addTestItem(t, db, cart.ID, product.ID, 1)

	require.NoError(t, repo.DeleteItem(context.Background(), item.ID))

	_, err := repo.FindItemByID(context.Background(), item.ID)
	assert.ErrorIs(t, err, repository.ErrCartItemNotFound)

	err = repo.DeleteItem(context.Background(), item.ID)
	assert.ErrorIs(t, err, repository.ErrCartItemNotFound)
}

func TestCartRepository_DeleteCartCascadesItems(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	user := createTestUser(t, db, "ada@example.com")
	cart := createTestCart(t, db, user.ID)
	product := createTestProduct(t, db, "lamp", nil)
	item := addTestItem(t, db, cart.ID, product.ID, 1)

	require.NoError(t, repo.DeleteCart(context.Background(), cart.ID))

	_, err := repo.FindCartByID(context.Background(), cart.ID)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)

	_, err = repo.FindItemByID(context.Background(), item.ID)
	assert.ErrorIs(t, err, repository.ErrCartItemNotFound)
}

// A user registers, gets a cart and puts a product into it; the cart then
// lists exactly that item.
func TestCartRepository_ShoppingRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	user := createTestUser(t, db, "ada@example.com")
	cart := createTestCart(t, db, user.ID)
	lamp := createTestProduct(t, db, "lamp", nil)
	addTestItem(t, db, cart.ID, lamp.ID, 1)

	items, err := repo.FindItemsByCart(context.Background(), cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, lamp.ID, items[0].ProductID)
	assert.Equal(t, 1, items[0].Quantity)
}
