// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// CreateCart persists a new cart. The unique index on user_id rejects a
// second cart for the same user.
func (repo *cartRepository) CreateCart(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCartAlreadyExists.WrapMessage("user already has a cart")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.ID = cartM.ID

	return nil
}

// FindCartByID retrieves a cart by its unique ID, including its items.
func (repo *cartRepository) FindCartByID(ctx context.Context, id uint) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by id")
	}

	return toCartDomain(&cartM), nil
}

// FindCartByUser retrieves the cart belonging to a user, including its items.
func (repo *cartRepository) FindCartByUser(ctx context.Context, userID uint) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return toCartDomain(&cartM), nil
}

// DeleteCart removes a cart; the store cascades to its items.
func (repo *cartRepository) DeleteCart(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.CartModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// AddItem persists a new cart item. Quantity below 1 fails validation before
// the store is touched; the check constraint backs it up.
func (repo *cartRepository) AddItem(ctx context.Context, item *entity.CartItem) error {
	itemM := fromCartItemDomain(item)

	if err := checkModel(itemM); err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid cart or product reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	item.ID = itemM.ID

	return nil
}

// FindItemByID retrieves a cart item by its unique ID.
func (repo *cartRepository) FindItemByID(ctx context.Context, id uint) (*entity.CartItem, error) {
	var itemM model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by id")
	}

	return toCartItemDomain(&itemM), nil
}

// FindItemsByCart retrieves all items in a cart.
func (repo *cartRepository) FindItemsByCart(ctx context.Context, cartID uint) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cart items by cart")
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

// UpdateItem modifies an existing cart item.
func (repo *cartRepository) UpdateItem(ctx context.Context, item *entity.CartItem) error {
	var current model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", item.ID).
		First(&current).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to load cart item for update")
	}

	itemM := fromCartItemDomain(item)

	if err := checkModel(itemM); err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Save(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid cart or product reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update cart item")
	}

	return nil
}

// DeleteItem removes a cart item.
func (repo *cartRepository) DeleteItem(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.CartItemModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain Cart entity.
func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]*entity.CartItem, 0, len(data.Items))
	for i := range data.Items {
		items = append(items, toCartItemDomain(&data.Items[i]))
	}

	return &entity.Cart{
		ID:     data.ID,
		UserID: data.UserID,
		Items:  items,
	}
}

// fromCartDomain converts a domain Cart entity to a GORM CartModel.
// Items are persisted individually through AddItem.
func fromCartDomain(data *entity.Cart) *model.CartModel {
	if data == nil {
		return nil
	}

	return &model.CartModel{
		ID:     data.ID,
		UserID: data.UserID,
	}
}

// toCartItemDomain converts a GORM CartItemModel to a domain CartItem entity.
func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		CartID:    data.CartID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
	}
}

// fromCartItemDomain converts a domain CartItem entity to a GORM CartItemModel.
func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		ID:        data.ID,
		CartID:    data.CartID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
	}
}
