package postgres

import (
	"context"
	"testing"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAssignsIDAndDate(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, db, "ada@example.com")

	assert.NotZero(t, user.ID)
	assert.WithinDuration(t, time.Now(), user.RegistrationDate, time.Minute)

	found := mustFindUser(t, repo, user.ID)
	assert.Equal(t, "ada@example.com", found.Email)
	assert.Equal(t, "plain-secret", found.Password)
	assert.WithinDuration(t, user.RegistrationDate, found.RegistrationDate, time.Second)
}

func TestUserRepository_DuplicateEmailRejected(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	createTestUser(t, db, "ada@example.com")

	dup := *createTestUser(t, db, "grace@example.com")
	dup.ID = 0
	dup.Email = "ada@example.com"
	dup.RegistrationDate = time.Time{}

	err := repo.Create(context.Background(), &dup)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	created := createTestUser(t, db, "ada@example.com")

	found, err := repo.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindByIDMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindByID(context.Background(), 999999)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_UpdateKeepsRegistrationDate(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	created := createTestUser(t, db, "ada@example.com")

	user := mustFindUser(t, repo, created.ID)
	user.Name = "Ada King"
	require.NoError(t, repo.Update(context.Background(), user))

	reloaded := mustFindUser(t, repo, created.ID)
	assert.Equal(t, "Ada King", reloaded.Name)
	assert.True(t, reloaded.RegistrationDate.Equal(user.RegistrationDate))
}

func TestUserRepository_UpdateRejectsChangedRegistrationDate(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	created := createTestUser(t, db, "ada@example.com")

	user := mustFindUser(t, repo, created.ID)
	user.RegistrationDate = user.RegistrationDate.Add(time.Hour)

	err := repo.Update(context.Background(), user)
	assert.ErrorIs(t, err, domainerrors.ErrImmutableField)
}

func TestUserRepository_UpdateAllowsZeroRegistrationDate(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	created := createTestUser(t, db, "ada@example.com")

	user := mustFindUser(t, repo, created.ID)
	stored := user.RegistrationDate
	user.RegistrationDate = time.Time{}
	user.Name = "Ada King"

	require.NoError(t, repo.Update(context.Background(), user))

	reloaded := mustFindUser(t, repo, created.ID)
	assert.Equal(t, "Ada King", reloaded.Name)
	assert.True(t, reloaded.RegistrationDate.Equal(stored))
}

func TestUserRepository_UpdateToTakenEmailRejected(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	createTestUser(t, db, "ada@example.com")
	other := createTestUser(t, db, "grace@example.com")

	user := mustFindUser(t, repo, other.ID)
	user.Email = "ada@example.com"

	err := repo.Update(context.Background(), user)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestUserRepository_UpdateMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, db, "ada@example.com")
	require.NoError(t, repo.Delete(context.Background(), user.ID))

	user.RegistrationDate = time.Time{}
	err := repo.Update(context.Background(), user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Delete(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, db, "ada@example.com")

	require.NoError(t, repo.Delete(context.Background(), user.ID))

	_, err := repo.FindByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = repo.Delete(context.Background(), user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	db := openTestDB(t)
	userRepo := NewUserRepository(db)
	orderRepo := NewOrderRepository(db)
	cartRepo := NewCartRepository(db)

	user := createTestUser(t, db, "ada@example.com")
	order := createTestOrder(t, db, user.ID)
	cart := createTestCart(t, db, user.ID)
	product := createTestProduct(t, db, "lamp", nil)
	item := addTestItem(t, db, cart.ID, product.ID, 2)

	require.NoError(t, userRepo.Delete(context.Background(), user.ID))

	_, err := orderRepo.FindByID(context.Background(), order.ID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	_, err = cartRepo.FindCartByID(context.Background(), cart.ID)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)

	_, err = cartRepo.FindItemByID(context.Background(), item.ID)
	assert.ErrorIs(t, err, repository.ErrCartItemNotFound)
}
