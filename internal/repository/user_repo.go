package repository

import (
	"context"

	"boxpoint-api/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, bool, error)
	FindByID(ctx context.Context, id uint) (*model.User, bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uint) error
	UpdatePassword(ctx context.Context, userID uint, hashedPassword string) error
	UpdateTokenVersion(ctx context.Context, userID uint, version string) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, bool, error) {
	return first[model.User](ctx, r.db, "email = ?", email)
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*model.User, bool, error) {
	return first[model.User](ctx, r.db, "id = ?", id)
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return exists(ctx, r.db.Model(&model.User{}).Where("email = ?", email))
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Omit("Cart").Save(user).Error
}

func (r *userRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}

func (r *userRepo) UpdatePassword(ctx context.Context, userID uint, hashedPassword string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Update("password", hashedPassword).Error
}

func (r *userRepo) UpdateTokenVersion(ctx context.Context, userID uint, version string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Update("token_version", version).Error
}
