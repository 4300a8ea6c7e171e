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
	"gorm.io/gorm/clause"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product and its category links.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := checkModel(productM); err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid parent product reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID

	if len(product.Categories) > 0 {
		ids := make([]uint, 0, len(product.Categories))
		for _, category := range product.Categories {
			ids = append(ids, category.ID)
		}

		return repo.ReplaceCategories(ctx, product.ID, ids)
	}

	return nil
}

// FindByID retrieves a single product by its unique ID with its categories.
func (repo *productRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByCategory retrieves all products linked to a category.
func (repo *productRepository) FindByCategory(ctx context.Context, categoryID uint) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN products_categories pc ON pc.product_id = products.id").
		Where("pc.category_id = ?", categoryID).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by category")
	}

	return toProductDomainSlice(productModels), nil
}

// FindChildren retrieves the direct children of a product.
func (repo *productRepository) FindChildren(ctx context.Context, id uint) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("parent_id = ?", id).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find child products")
	}

	return toProductDomainSlice(productModels), nil
}

// Ancestors walks the parent chain from the product to its root.
func (repo *productRepository) Ancestors(ctx context.Context, id uint) ([]*entity.Product, error) {
	if err := repo.exists(ctx, id); err != nil {
		return nil, err
	}

	chain, err := collectAncestors(ctx, id, repo.fetchParent)
	if err != nil {
		return nil, err
	}

	return repo.findInOrder(ctx, chain)
}

// Descendants collects the whole subtree below the product, breadth-first.
func (repo *productRepository) Descendants(ctx context.Context, id uint) ([]*entity.Product, error) {
	if err := repo.exists(ctx, id); err != nil {
		return nil, err
	}

	ids, err := collectDescendants(ctx, id, repo.fetchChildren)
	if err != nil {
		return nil, err
	}

	return repo.findInOrder(ctx, ids)
}

// Update modifies an existing product. A parent reassignment is validated
// for acyclicity before anything is written. Category links are left alone;
// use ReplaceCategories for those.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	if err := repo.exists(ctx, product.ID); err != nil {
		return err
	}

	if err := ensureAcyclicParent(ctx, product.ID, product.ParentID, repo.fetchParent); err != nil {
		return err
	}

	productM := fromProductDomain(product)

	if err := checkModel(productM); err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid parent product reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return nil
}

// ReplaceCategories replaces the product's category links with the given set.
func (repo *productRepository) ReplaceCategories(ctx context.Context, productID uint, categoryIDs []uint) error {
	if err := repo.exists(ctx, productID); err != nil {
		return err
	}

	links := make([]*model.CategoryModel, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		links = append(links, &model.CategoryModel{ID: id})
	}

	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{ID: productID}).
		Association("Categories").
		Replace(links)
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to replace product categories")
	}

	return nil
}

// Delete removes a product; the store cascades to child products, category
// links and any cart items referencing it.
func (repo *productRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// exists verifies a product row is present without loading associations.
func (repo *productRepository) exists(ctx context.Context, id uint) error {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Select("id").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to check product existence")
	}

	return nil
}

// fetchParent reports the parent ID of a product, nil for roots.
func (repo *productRepository) fetchParent(ctx context.Context, id uint) (*uint, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Select("id", "parent_id").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve product parent")
	}

	return productM.ParentID, nil
}

// fetchChildren reports the IDs of all direct children of the given products.
func (repo *productRepository) fetchChildren(ctx context.Context, parentIDs []uint) ([]uint, error) {
	var ids []uint

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("parent_id IN ?", parentIDs).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to resolve product children")
	}

	return ids, nil
}

// findInOrder loads the products for the given IDs and returns them in the
// same order.
func (repo *productRepository) findInOrder(ctx context.Context, ids []uint) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	byID := make(map[uint]*model.ProductModel, len(productModels))
	for _, productM := range productModels {
		byID[productM.ID] = productM
	}

	ordered := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if productM, ok := byID[id]; ok {
			ordered = append(ordered, toProductDomain(productM))
		}
	}

	return ordered, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	categories := make([]*entity.Category, 0, len(data.Categories))
	for _, categoryM := range data.Categories {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return &entity.Product{
		ID:          data.ID,
		ParentID:    data.ParentID,
		Name:        data.Name,
		ImageURL:    data.ImageURL,
		Description: data.Description,
		Categories:  categories,
		Stock:       data.Stock,
		Price:       data.Price,
	}
}

func toProductDomainSlice(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
// Category links are intentionally not mapped; they are written through the
// association API.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		ParentID:    data.ParentID,
		Name:        data.Name,
		ImageURL:    data.ImageURL,
		Description: data.Description,
		Stock:       data.Stock,
		Price:       data.Price,
	}
}
