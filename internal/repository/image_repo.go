package repository

import (
	"context"

	"boxpoint-api/internal/model"

	"gorm.io/gorm"
)

type ImageRepository interface {
	WithTx(tx *gorm.DB) ImageRepository
	Create(ctx context.Context, image *model.Image) error
	Update(ctx context.Context, image *model.Image) error
	Delete(ctx context.Context, id uint) error
	DeleteByProductID(ctx context.Context, productID uint) error
	FindByID(ctx context.Context, id uint) (*model.Image, bool, error)
	FindByProductID(ctx context.Context, productID uint) ([]model.Image, error)
	Count(ctx context.Context) (int64, error)
}

type imageRepo struct {
	db *gorm.DB
}

func NewImageRepo(db *gorm.DB) ImageRepository {
	return &imageRepo{db}
}

func (r *imageRepo) WithTx(tx *gorm.DB) ImageRepository {
	return &imageRepo{tx}
}

func (r *imageRepo) Create(ctx context.Context, image *model.Image) error {
	return r.db.WithContext(ctx).Omit("Product").Create(image).Error
}

func (r *imageRepo) Update(ctx context.Context, image *model.Image) error {
	return r.db.WithContext(ctx).Omit("Product").Save(image).Error
}

func (r *imageRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Image{}, id).Error
}

func (r *imageRepo) DeleteByProductID(ctx context.Context, productID uint) error {
	return r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&model.Image{}).Error
}

func (r *imageRepo) FindByID(ctx context.Context, id uint) (*model.Image, bool, error) {
	return first[model.Image](ctx, r.db, "id = ?", id)
}

// FindByProductID skips the blob column, callers only need metadata
func (r *imageRepo) FindByProductID(ctx context.Context, productID uint) ([]model.Image, error) {
	var images []model.Image
	err := r.db.WithContext(ctx).
		Select("id", "created_at", "updated_at", "file_name", "file_type", "download_url", "product_id").
		Where("product_id = ?", productID).
		Order("id ASC").
		Find(&images).Error
	return images, err
}

func (r *imageRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Image{}).Count(&count).Error
	return count, err
}
