package repository

import (
	"context"

	"boxpoint-api/internal/model"

	"gorm.io/gorm"
)

type CartRepository interface {
	WithTx(tx *gorm.DB) CartRepository
	FindByID(ctx context.Context, id uint) (*model.Cart, bool, error)
	UpdateTotal(ctx context.Context, cartID uint, total float64) error
	FindItemsByProductID(ctx context.Context, productID uint) ([]model.CartItem, error)
	DeleteItem(ctx context.Context, id uint) error
}

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepo(db *gorm.DB) CartRepository {
	return &cartRepo{db}
}

func (r *cartRepo) WithTx(tx *gorm.DB) CartRepository {
	return &cartRepo{tx}
}

func (r *cartRepo) FindByID(ctx context.Context, id uint) (*model.Cart, bool, error) {
	return first[model.Cart](ctx, r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}), "id = ?", id)
}

func (r *cartRepo) UpdateTotal(ctx context.Context, cartID uint, total float64) error {
	return r.db.WithContext(ctx).Model(&model.Cart{}).Where("id = ?", cartID).Update("total_amount", total).Error
}

func (r *cartRepo) FindItemsByProductID(ctx context.Context, productID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *cartRepo) DeleteItem(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.CartItem{}, id).Error
}
