package repository

import (
	"context"
	"strings"

	"boxpoint-api/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	WithTx(tx *gorm.DB) ProductRepository
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uint) error
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, bool, error)
	ExistsByNameAndBrand(ctx context.Context, name, brand string) (bool, error)
	FindByCategoryName(ctx context.Context, category string) ([]model.Product, error)
	FindByCategoryNameAndBrand(ctx context.Context, category, brand string) ([]model.Product, error)
	FindByBrand(ctx context.Context, brand string) ([]model.Product, error)
	FindByBrandAndName(ctx context.Context, brand, name string) ([]model.Product, error)
	FindByNameContaining(ctx context.Context, name string) ([]model.Product, error)
	CountByCategoryID(ctx context.Context, categoryID uint) (int64, error)
	DetachCategory(ctx context.Context, categoryID uint) error
	GetStats(ctx context.Context) (*ProductStats, error)
}

// ProductStats untuk overview stats
type ProductStats struct {
	TotalProducts  int64   `json:"total_products"`
	LowStockCount  int64   `json:"low_stock_count"`
	TotalValuation float64 `json:"total_valuation"`
}

// LowStockThreshold is the inventory level below which a product counts as low stock
const LowStockThreshold = 10

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) WithTx(tx *gorm.DB) ProductRepository {
	return &productRepo{tx}
}

func (r *productRepo) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Category")
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Omit("Category").Create(product).Error
}

func (r *productRepo) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Omit("Category").Save(product).Error
}

func (r *productRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *productRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.query(ctx).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, bool, error) {
	return first[model.Product](ctx, r.db.Preload("Category"), "id = ?", id)
}

func (r *productRepo) ExistsByNameAndBrand(ctx context.Context, name, brand string) (bool, error) {
	return exists(ctx, r.db.Model(&model.Product{}).Where("name = ? AND brand = ?", name, brand))
}

func (r *productRepo) byCategoryName(ctx context.Context, category string) *gorm.DB {
	return r.query(ctx).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("categories.name = ?", category)
}

func (r *productRepo) FindByCategoryName(ctx context.Context, category string) ([]model.Product, error) {
	var products []model.Product
	err := r.byCategoryName(ctx, category).Order("products.id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByCategoryNameAndBrand(ctx context.Context, category, brand string) ([]model.Product, error) {
	var products []model.Product
	err := r.byCategoryName(ctx, category).
		Where("products.brand = ?", brand).
		Order("products.id ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByBrand(ctx context.Context, brand string) ([]model.Product, error) {
	var products []model.Product
	err := r.query(ctx).Where("brand = ?", brand).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByBrandAndName(ctx context.Context, brand, name string) ([]model.Product, error) {
	var products []model.Product
	err := r.query(ctx).Where("brand = ? AND name = ?", brand, name).Order("id ASC").Find(&products).Error
	return products, err
}

// likeEscaper makes % and _ in a search term match literally, with '!'
// as the LIKE escape character
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// FindByNameContaining matches name case-insensitively as a substring
func (r *productRepo) FindByNameContaining(ctx context.Context, name string) ([]model.Product, error) {
	var products []model.Product
	pattern := "%" + likeEscaper.Replace(strings.ToLower(name)) + "%"
	err := r.query(ctx).Where("LOWER(name) LIKE ? ESCAPE '!'", pattern).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) CountByCategoryID(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// DetachCategory nulls category_id on every product of the category
func (r *productRepo) DetachCategory(ctx context.Context, categoryID uint) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil).Error
}

func (r *productRepo) GetStats(ctx context.Context) (*ProductStats, error) {
	var stats ProductStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Product{}).Where("inventory < ?", LowStockThreshold).Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}
	// Total Valuation (SUM of inventory * price)
	if err := db.Model(&model.Product{}).Select("COALESCE(SUM(inventory * price), 0)").Scan(&stats.TotalValuation).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
