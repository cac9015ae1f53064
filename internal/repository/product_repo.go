package repository

import (
	"context"

	"bazar-dor-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository is the persistence collaborator for the catalog.
type ProductRepository interface {
	// FindAll returns every product, most recently updated first.
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	// Create inserts the product and fills in its assigned ID.
	Create(ctx context.Context, product *model.Product) error
	// Update overwrites the editable fields of an existing product.
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CreateMany(ctx context.Context, products []model.Product) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// editableColumns are written by Update; id and creation audit stay untouched.
var editableColumns = []string{
	"name_bn", "name_en", "category_id", "price", "unit_bn", "unit_en",
	"last_updated", "trend", "price_change", "image", "price_history", "updated_by", "updated_at",
}

func (r *productRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("last_updated DESC").Order("updated_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) Update(ctx context.Context, product *model.Product) error {
	res := r.db.WithContext(ctx).Model(product).Select(editableColumns).Updates(product)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error
	return n, err
}

// CreateMany inserts products in one transaction (used for seeding).
func (r *productRepo) CreateMany(ctx context.Context, products []model.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range products {
			if err := tx.Create(&products[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
