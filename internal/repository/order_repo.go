package repository

import (
	"context"

	"boxpoint-api/internal/model"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	WithTx(tx *gorm.DB) OrderItemRepository
	DetachProduct(ctx context.Context, productID uint) (int64, error)
}

type orderItemRepo struct {
	db *gorm.DB
}

func NewOrderItemRepo(db *gorm.DB) OrderItemRepository {
	return &orderItemRepo{db}
}

func (r *orderItemRepo) WithTx(tx *gorm.DB) OrderItemRepository {
	return &orderItemRepo{tx}
}

// DetachProduct nulls product_id on the order items of a product and keeps the rows
func (r *orderItemRepo) DetachProduct(ctx context.Context, productID uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Where("product_id = ?", productID).
		Update("product_id", nil)
	return res.RowsAffected, res.Error
}
