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

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := checkModel(categoryM); err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid parent category reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required category information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID

	return nil
}

// FindByID retrieves a single category by its unique ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindRoots retrieves all categories without a parent.
func (repo *categoryRepository) FindRoots(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("parent_id IS NULL").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find root categories")
	}

	return toCategoryDomainSlice(categoryModels), nil
}

// FindChildren retrieves the direct children of a category.
func (repo *categoryRepository) FindChildren(ctx context.Context, id uint) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("parent_id = ?", id).
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find child categories")
	}

	return toCategoryDomainSlice(categoryModels), nil
}

// FindByProduct retrieves all categories a product is linked to.
func (repo *categoryRepository) FindByProduct(ctx context.Context, productID uint) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN products_categories pc ON pc.category_id = categories.id").
		Where("pc.product_id = ?", productID).
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find categories by product")
	}

	return toCategoryDomainSlice(categoryModels), nil
}

// Ancestors walks the parent chain from the category to its root.
func (repo *categoryRepository) Ancestors(ctx context.Context, id uint) ([]*entity.Category, error) {
	if _, err := repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	chain, err := collectAncestors(ctx, id, repo.fetchParent)
	if err != nil {
		return nil, err
	}

	return repo.findInOrder(ctx, chain)
}

// Descendants collects the whole subtree below the category, breadth-first.
func (repo *categoryRepository) Descendants(ctx context.Context, id uint) ([]*entity.Category, error) {
	if _, err := repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	ids, err := collectDescendants(ctx, id, repo.fetchChildren)
	if err != nil {
		return nil, err
	}

	return repo.findInOrder(ctx, ids)
}

// Update modifies an existing category. A parent reassignment is validated
// for acyclicity before anything is written.
func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	if _, err := repo.FindByID(ctx, category.ID); err != nil {
		return err
	}

	if err := ensureAcyclicParent(ctx, category.ID, category.ParentID, repo.fetchParent); err != nil {
		return err
	}

	categoryM := fromCategoryDomain(category)

	if err := checkModel(categoryM); err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Save(categoryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid parent category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update category")
	}

	return nil
}

// Delete removes a category; the store cascades to the whole subtree.
func (repo *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.CategoryModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// fetchParent reports the parent ID of a category, nil for roots.
func (repo *categoryRepository) fetchParent(ctx context.Context, id uint) (*uint, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Select("id", "parent_id").
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve category parent")
	}

	return categoryM.ParentID, nil
}

// fetchChildren reports the IDs of all direct children of the given categories.
func (repo *categoryRepository) fetchChildren(ctx context.Context, parentIDs []uint) ([]uint, error) {
	var ids []uint

	if err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("parent_id IN ?", parentIDs).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to resolve category children")
	}

	return ids, nil
}

// findInOrder loads the categories for the given IDs and returns them in the
// same order.
func (repo *categoryRepository) findInOrder(ctx context.Context, ids []uint) ([]*entity.Category, error) {
	if len(ids) == 0 {
		return []*entity.Category{}, nil
	}

	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load categories")
	}

	byID := make(map[uint]*model.CategoryModel, len(categoryModels))
	for _, categoryM := range categoryModels {
		byID[categoryM.ID] = categoryM
	}

	ordered := make([]*entity.Category, 0, len(ids))
	for _, id := range ids {
		if categoryM, ok := byID[id]; ok {
			ordered = append(ordered, toCategoryDomain(categoryM))
		}
	}

	return ordered, nil
}

// --- Mapper Functions ---

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		ParentID:    data.ParentID,
		Title:       data.Title,
		Description: data.Description,
		Avatar:      data.Avatar,
	}
}

func toCategoryDomainSlice(data []*model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, 0, len(data))
	for _, categoryM := range data {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories
}

// fromCategoryDomain converts a domain Category entity to a GORM CategoryModel.
func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          data.ID,
		ParentID:    data.ParentID,
		Title:       data.Title,
		Description: data.Description,
		Avatar:      data.Avatar,
	}
}
