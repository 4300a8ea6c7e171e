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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order. The store assigns the ID and the order date;
// the status must be one of the enumerated values.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := checkModel(orderM); err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.OrderDate = orderM.OrderDate

	return nil
}

// FindByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uint) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser retrieves all orders placed by a user, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uint) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Update modifies an existing order. OrderDate is immutable: a non-zero value
// that differs from the stored one is rejected, and the column is never
// written.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	var current model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", order.ID).
		First(&current).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to load order for update")
	}

	if !order.OrderDate.IsZero() && !order.OrderDate.Equal(current.OrderDate) {
		return domainerrors.ErrImmutableField.WithDetails("order_date")
	}

	orderM := fromOrderDomain(order)
	orderM.OrderDate = current.OrderDate

	if err := checkModel(orderM); err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Omit("order_date").
		Save(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update order")
	}

	order.OrderDate = current.OrderDate

	return nil
}

// Delete removes an order.
func (repo *orderRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.OrderModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:          data.ID,
		UserID:      data.UserID,
		OrderDate:   data.OrderDate,
		Status:      entity.OrderStatus(data.Status),
		TotalAmount: data.TotalAmount,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Status:      data.Status.String(),
		TotalAmount: data.TotalAmount,
	}
}
