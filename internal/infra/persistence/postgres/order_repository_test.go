package postgres

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_CreateAssignsIDAndDate(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)

	user := createTestUser(t, db, "ada@example.com")
	order := createTestOrder(t, db, user.ID)

	assert.NotZero(t, order.ID)
	assert.WithinDuration(t, time.Now(), order.OrderDate, time.Minute)

	found, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, found.Status)
	assert.True(t, decimal.NewFromFloat(99.99).Equal(found.TotalAmount))
}

func TestOrderRepository_CreateRejectsUnknownStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)

	user := createTestUser(t, db, "ada@example.com")

	order := &entity.Order{
		UserID:      user.ID,
		Status:      entity.OrderStatus("Shipped"),
		TotalAmount: decimal.NewFromFloat(10),
	}
	err := repo.Create(context.Background(), order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderRepository_CreateRejectsUnknownUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)

	order := &entity.Order{
		UserID:      999999,
		Status:      entity.OrderStatusPending,
		TotalAmount: decimal.NewFromFloat(10),
	}
	err := repo.Create(context.Background(), order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderRepository_FindByUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)

	ada := createTestUser(t, db, "ada@example.com")
	grace := createTestUser(t, db, "grace@example.com")

	first := createTestOrder(t, db, ada.ID)
	second := createTestOrder(t, db, ada.ID)
	createTestOrder(t, db, grace.ID)

	orders, err := repo.FindByUser(context.Background(), ada.ID)
	require.NoError(t, err)
	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	assert.ElementsMatch(t, []uint{first.ID, second.ID}, ids)

	orders, err = repo.FindByUser(context.Background(), 999999)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)

	user := createTestUser(t, db, "ada@example.com")
	created := createTestOrder(t, db, user.ID)

	order, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)

	order.Status = entity.OrderStatusCompleted
	require.NoError(t, repo.Update(context.Background(), order))

	reloaded, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, reloaded.Status)
	assert.True(t, reloaded.OrderDate.Equal(order.OrderDate))
}

func TestOrderRepository_UpdateRejectsChangedOrderDate(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)

	user := createTestUser(t, db, "ada@example.com")
	created := createTestOrder(t, db, user.ID)

	order, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)

	order.OrderDate = order.OrderDate.Add(time.Hour)
	err = repo.Update(context.Background(), order)
	assert.ErrorIs(t, err, domainerrors.ErrImmutableField)
}

func TestOrderRepository_UpdateRejectsUnknownStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)

	user := createTestUser(t, db, "ada@example.com")
	created := createTestOrder(t, db, user.ID)

	order, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)

	order.Status = entity.OrderStatus("Refunded")
	err = repo.Update(context.Background(), order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderRepository_Delete(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)

	user := createTestUser(t, db, "ada@example.com")
	order := createTestOrder(t, db, user.ID)

	require.NoError(t, repo.Delete(context.Background(), order.ID))

	_, err := repo.FindByID(context.Background(), order.ID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	err = repo.Delete(context.Background(), order.ID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
