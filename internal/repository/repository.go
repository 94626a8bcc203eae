package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// first runs q.First and turns gorm.ErrRecordNotFound into found=false
// so callers decide what a missing row means.
func first[T any](ctx context.Context, q *gorm.DB, conds ...interface{}) (*T, bool, error) {
	var v T
	err := q.WithContext(ctx).First(&v, conds...).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &v, true, nil
}

func exists(ctx context.Context, q *gorm.DB) (bool, error) {
	var count int64
	if err := q.WithContext(ctx).Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
