package service

import (
	"context"
	"fmt"

	"boxpoint-api/internal/apperror"
	"boxpoint-api/internal/cache"
	"boxpoint-api/internal/model"
	"boxpoint-api/internal/repository"
	"boxpoint-api/internal/ws"
	"boxpoint-api/pkg/validator"

	"gorm.io/gorm"
)

type CategoryService interface {
	AddCategory(ctx context.Context, req *CategoryRequest) (*model.Category, error)
	UpdateCategory(ctx context.Context, req *CategoryRequest, id uint) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
	GetAllCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByID(ctx context.Context, id uint) (*model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, bool, error)
}

type CategoryRequest struct {
	Name string `json:"name" validate:"notblank"`
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	db           *gorm.DB
	cache        cache.ProductCache
	events       ws.Publisher
}

func NewCategoryService(cRepo repository.CategoryRepository, pRepo repository.ProductRepository, db *gorm.DB, productCache cache.ProductCache, events ws.Publisher) CategoryService {
	if productCache == nil {
		productCache = cache.NewNoopProductCache()
	}
	return &categoryService{
		categoryRepo: cRepo,
		productRepo:  pRepo,
		db:           db,
		cache:        productCache,
		events:       events,
	}
}

func (s *categoryService) AddCategory(ctx context.Context, req *CategoryRequest) (*model.Category, error) {
	if msg := validator.FirstError(req); msg != "" {
		return nil, apperror.Invalid("%s", msg)
	}

	exists, err := s.categoryRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if exists {
		return nil, apperror.AlreadyExists(req.Name + " already exists!")
	}

	category := &model.Category{Name: req.Name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if isDuplicate(err) {
			return nil, apperror.AlreadyExists(req.Name + " already exists!")
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	publish(s.events, "category_created", category.ID, fmt.Sprintf("Category '%s' created", category.Name))
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, req *CategoryRequest, id uint) (*model.Category, error) {
	if msg := validator.FirstError(req); msg != "" {
		return nil, apperror.Invalid("%s", msg)
	}

	category, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != category.Name {
		taken, err := s.categoryRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, fmt.Errorf("check category name: %w", err)
		}
		if taken {
			return nil, apperror.AlreadyExists(req.Name + " already exists!")
		}
	}

	category.Name = req.Name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if isDuplicate(err) {
			return nil, apperror.AlreadyExists(req.Name + " already exists!")
		}
		return nil, fmt.Errorf("update category: %w", err)
	}

	// Product responses embed the category name
	s.cache.Purge(ctx)
	publish(s.events, "category_updated", category.ID, fmt.Sprintf("Category renamed to '%s'", category.Name))
	return category, nil
}

// DeleteCategory detaches the category's products before removing the row
func (s *categoryService) DeleteCategory(ctx context.Context, id uint) error {
	category, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}

	var detached int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := s.productRepo.WithTx(tx)
		count, err := products.CountByCategoryID(ctx, category.ID)
		if err != nil {
			return fmt.Errorf("count products: %w", err)
		}
		if err := products.DetachCategory(ctx, category.ID); err != nil {
			return fmt.Errorf("detach products: %w", err)
		}
		if err := s.categoryRepo.WithTx(tx).Delete(ctx, category.ID); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		detached = count
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Purge(ctx)
	publish(s.events, "category_deleted", category.ID, fmt.Sprintf("Category '%s' deleted, %d product(s) detached", category.Name, detached))
	return nil
}

func (s *categoryService) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id uint) (*model.Category, error) {
	category, found, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find category %d: %w", id, err)
	}
	if !found {
		return nil, apperror.NotFound("Category not found!")
	}
	return category, nil
}

// GetCategoryByName is a lookup, a missing name is reported through found
func (s *categoryService) GetCategoryByName(ctx context.Context, name string) (*model.Category, bool, error) {
	return s.categoryRepo.FindByName(ctx, name)
}
