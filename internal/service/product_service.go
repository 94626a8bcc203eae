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

type ProductService interface {
	AddProduct(ctx context.Context, req *AddProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, req *UpdateProductRequest, id uint) (*model.Product, error)
	DeleteProductByID(ctx context.Context, id uint) error
	GetProductByID(ctx context.Context, id uint) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	GetProductsByCategoryAndBrand(ctx context.Context, category, brand string) ([]model.Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error)
	GetProductsByBrandAndName(ctx context.Context, brand, name string) ([]model.Product, error)
	GetProductsByBrand(ctx context.Context, brand string) ([]model.Product, error)
	GetProductsByName(ctx context.Context, name string) ([]model.Product, error)
	ConvertToDto(ctx context.Context, product *model.Product) (*model.ProductResponse, error)
	GetConvertedProducts(ctx context.Context, products []model.Product) ([]model.ProductResponse, error)
	GetProductResponseByID(ctx context.Context, id uint) (*model.ProductResponse, error)
}

type AddProductRequest struct {
	Name        string          `json:"name" validate:"notblank"`
	Brand       string          `json:"brand" validate:"notblank"`
	Price       float64         `json:"price" validate:"gte=0"`
	Inventory   int             `json:"inventory" validate:"gte=0"`
	Description string          `json:"description"`
	Category    CategoryRequest `json:"category"`
}

type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"notblank"`
	Brand       string          `json:"brand" validate:"notblank"`
	Price       float64         `json:"price" validate:"gte=0"`
	Inventory   int             `json:"inventory" validate:"gte=0"`
	Description string          `json:"description"`
	Category    CategoryRequest `json:"category"`
}

type productService struct {
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	imageRepo     repository.ImageRepository
	cartRepo      repository.CartRepository
	orderItemRepo repository.OrderItemRepository
	db            *gorm.DB
	cache         cache.ProductCache
	events        ws.Publisher
}

type ProductServiceDeps struct {
	Products   repository.ProductRepository
	Categories repository.CategoryRepository
	Images     repository.ImageRepository
	Carts      repository.CartRepository
	OrderItems repository.OrderItemRepository
	DB         *gorm.DB
	Cache      cache.ProductCache
	Events     ws.Publisher
}

func NewProductService(deps ProductServiceDeps) ProductService {
	if deps.Cache == nil {
		deps.Cache = cache.NewNoopProductCache()
	}
	return &productService{
		productRepo:   deps.Products,
		categoryRepo:  deps.Categories,
		imageRepo:     deps.Images,
		cartRepo:      deps.Carts,
		orderItemRepo: deps.OrderItems,
		db:            deps.DB,
		cache:         deps.Cache,
		events:        deps.Events,
	}
}

func (s *productService) AddProduct(ctx context.Context, req *AddProductRequest) (*model.Product, error) {
	// 1. Validasi Struct Dasar
	if msg := validator.FirstError(req); msg != "" {
		return nil, apperror.Invalid("%s", msg)
	}

	// 2. Cek Duplikasi (name, brand)
	exists, err := s.productRepo.ExistsByNameAndBrand(ctx, req.Name, req.Brand)
	if err != nil {
		return nil, fmt.Errorf("check product: %w", err)
	}
	if exists {
		return nil, apperror.AlreadyExists(req.Name + " already exists!")
	}

	product := &model.Product{
		Name:        req.Name,
		Brand:       req.Brand,
		Price:       req.Price,
		Inventory:   req.Inventory,
		Description: req.Description,
	}

	// 3. Resolve category and save in one transaction
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := resolveCategory(ctx, s.categoryRepo.WithTx(tx), req.Category.Name)
		if err != nil {
			return err
		}
		product.CategoryID = &category.ID
		product.Category = category

		if err := s.productRepo.WithTx(tx).Create(ctx, product); err != nil {
			if isDuplicate(err) {
				return apperror.AlreadyExists(req.Name + " already exists!")
			}
			return fmt.Errorf("create product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(s.events, "product_created", product.ID, fmt.Sprintf("Product '%s' created", product.Name))
	return product, nil
}

// resolveCategory returns the category with the given name, creating it
// when it does not exist yet.
func resolveCategory(ctx context.Context, categories repository.CategoryRepository, name string) (*model.Category, error) {
	category, found, err := categories.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find category %q: %w", name, err)
	}
	if found {
		return category, nil
	}

	category = &model.Category{Name: name}
	if err := categories.Create(ctx, category); err != nil {
		if isDuplicate(err) {
			return nil, apperror.AlreadyExists(name + " already exists!")
		}
		return nil, fmt.Errorf("create category %q: %w", name, err)
	}
	return category, nil
}

// UpdateProduct overwrites the mutable fields. A category name that does
// not exist yet is created, the same as in AddProduct.
func (s *productService) UpdateProduct(ctx context.Context, req *UpdateProductRequest, id uint) (*model.Product, error) {
	if msg := validator.FirstError(req); msg != "" {
		return nil, apperror.Invalid("%s", msg)
	}

	var updated *model.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := s.productRepo.WithTx(tx)

		existing, found, err := products.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("find product %d: %w", id, err)
		}
		if !found {
			return apperror.NotFound("Product not found!")
		}

		if existing.Name != req.Name || existing.Brand != req.Brand {
			taken, err := products.ExistsByNameAndBrand(ctx, req.Name, req.Brand)
			if err != nil {
				return fmt.Errorf("check product: %w", err)
			}
			if taken {
				return apperror.AlreadyExists(req.Name + " already exists!")
			}
		}

		category, err := resolveCategory(ctx, s.categoryRepo.WithTx(tx), req.Category.Name)
		if err != nil {
			return err
		}

		existing.Name = req.Name
		existing.Brand = req.Brand
		existing.Price = req.Price
		existing.Inventory = req.Inventory
		existing.Description = req.Description
		existing.CategoryID = &category.ID
		existing.Category = category

		if err := products.Update(ctx, existing); err != nil {
			if isDuplicate(err) {
				return apperror.AlreadyExists(req.Name + " already exists!")
			}
			return fmt.Errorf("update product: %w", err)
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, updated.ID)
	publish(s.events, "product_updated", updated.ID, fmt.Sprintf("Product '%s' updated", updated.Name))
	return updated, nil
}

// DeleteProductByID removes the product and severs every inbound
// reference first: cart items are deleted, order items keep their row
// with product_id nulled, images are removed. All of it commits or
// rolls back together.
func (s *productService) DeleteProductByID(ctx context.Context, id uint) error {
	var deleted *model.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := s.productRepo.WithTx(tx)
		carts := s.cartRepo.WithTx(tx)

		product, found, err := products.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("find product %d: %w", id, err)
		}
		if !found {
			return apperror.NotFound("Product not found!")
		}

		// a. Cart items: drop from the owning cart, then delete
		cartItems, err := carts.FindItemsByProductID(ctx, product.ID)
		if err != nil {
			return fmt.Errorf("find cart items: %w", err)
		}
		for _, item := range cartItems {
			cart, found, err := carts.FindByID(ctx, item.CartID)
			if err != nil {
				return fmt.Errorf("find cart %d: %w", item.CartID, err)
			}
			if found {
				cart.RemoveItem(item.ID)
				if err := carts.UpdateTotal(ctx, cart.ID, cart.TotalAmount); err != nil {
					return fmt.Errorf("update cart %d total: %w", cart.ID, err)
				}
			}
			if err := carts.DeleteItem(ctx, item.ID); err != nil {
				return fmt.Errorf("delete cart item %d: %w", item.ID, err)
			}
		}

		// b. Order items: keep the history, break the link
		if _, err := s.orderItemRepo.WithTx(tx).DetachProduct(ctx, product.ID); err != nil {
			return fmt.Errorf("detach order items: %w", err)
		}

		// c. Images belong to the product only
		if err := s.imageRepo.WithTx(tx).DeleteByProductID(ctx, product.ID); err != nil {
			return fmt.Errorf("delete images: %w", err)
		}

		// d. Category link
		product.CategoryID = nil
		product.Category = nil

		// e. The row itself
		if err := products.Delete(ctx, product.ID); err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		deleted = product
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, deleted.ID)
	publish(s.events, "product_deleted", deleted.ID, fmt.Sprintf("Product '%s' deleted", deleted.Name))
	return nil
}

func (s *productService) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	product, found, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product %d: %w", id, err)
	}
	if !found {
		return nil, apperror.NotFound("Product not found!")
	}
	return product, nil
}

func (s *productService) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.FindAll(ctx)
}

func (s *productService) GetProductsByCategoryAndBrand(ctx context.Context, category, brand string) ([]model.Product, error) {
	return s.productRepo.FindByCategoryNameAndBrand(ctx, category, brand)
}

func (s *productService) GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return s.productRepo.FindByCategoryName(ctx, category)
}

func (s *productService) GetProductsByBrandAndName(ctx context.Context, brand, name string) ([]model.Product, error) {
	return s.productRepo.FindByBrandAndName(ctx, brand, name)
}

func (s *productService) GetProductsByBrand(ctx context.Context, brand string) ([]model.Product, error) {
	return s.productRepo.FindByBrand(ctx, brand)
}

func (s *productService) GetProductsByName(ctx context.Context, name string) ([]model.Product, error) {
	return s.productRepo.FindByNameContaining(ctx, name)
}

// ConvertToDto maps the product and attaches its images, which are loaded
// with a separate query.
func (s *productService) ConvertToDto(ctx context.Context, product *model.Product) (*model.ProductResponse, error) {
	images, err := s.imageRepo.FindByProductID(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("find images of product %d: %w", product.ID, err)
	}
	response := product.ToResponse(images)
	return &response, nil
}

func (s *productService) GetConvertedProducts(ctx context.Context, products []model.Product) ([]model.ProductResponse, error) {
	responses := make([]model.ProductResponse, len(products))
	for i := range products {
		response, err := s.ConvertToDto(ctx, &products[i])
		if err != nil {
			return nil, err
		}
		responses[i] = *response
	}
	return responses, nil
}

func (s *productService) GetProductResponseByID(ctx context.Context, id uint) (*model.ProductResponse, error) {
	if cached, ok := s.cache.Get(ctx, id); ok {
		return cached, nil
	}

	product, err := s.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response, err := s.ConvertToDto(ctx, product)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, response)
	return response, nil
}
