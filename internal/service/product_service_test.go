package service

import (
	"context"
	"testing"

	"boxpoint-api/internal/apperror"
	"boxpoint-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProductReusesOrCreatesCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	existing, err := f.categories.AddCategory(ctx, &CategoryRequest{Name: "Electronics"})
	require.NoError(t, err)

	phone := f.addProduct(t, "Phone", "Acme", "Electronics")
	require.NotNil(t, phone.CategoryID)
	assert.Equal(t, existing.ID, *phone.CategoryID)

	book := f.addProduct(t, "Go Guide", "Acme", "Books")
	require.NotNil(t, book.Category)
	assert.Equal(t, "Books", book.Category.Name)

	all, err := f.categories.GetAllCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAddProductRejectsDuplicatesAndInvalidInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addProduct(t, "Phone", "Acme", "Electronics")

	_, err := f.products.AddProduct(ctx, &AddProductRequest{
		Name: "Phone", Brand: "Acme", Category: CategoryRequest{Name: "Other"},
	})
	assert.ErrorIs(t, err, apperror.ErrAlreadyExists)
	assert.EqualError(t, err, "Phone already exists!")

	// same name, other brand is a different product
	_, err = f.products.AddProduct(ctx, &AddProductRequest{
		Name: "Phone", Brand: "Zeta", Category: CategoryRequest{Name: "Electronics"},
	})
	require.NoError(t, err)

	_, err = f.products.AddProduct(ctx, &AddProductRequest{
		Name: "Tablet", Brand: "Acme", Price: -1, Category: CategoryRequest{Name: "Electronics"},
	})
	assert.ErrorIs(t, err, apperror.ErrInvalid)

	_, err = f.products.AddProduct(ctx, &AddProductRequest{Name: "Tablet", Brand: "Acme"})
	assert.ErrorIs(t, err, apperror.ErrInvalid)
}

func TestUpdateProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	phone := f.addProduct(t, "Phone", "Acme", "Electronics")
	f.addProduct(t, "Tablet", "Acme", "Electronics")

	_, err := f.products.GetProductResponseByID(ctx, phone.ID)
	require.NoError(t, err)
	require.Contains(t, f.cache.entries, phone.ID)

	updated, err := f.products.UpdateProduct(ctx, &UpdateProductRequest{
		Name:        "Phone 2",
		Brand:       "Acme",
		Price:       250,
		Inventory:   7,
		Description: "new",
		Category:    CategoryRequest{Name: "Gadgets"},
	}, phone.ID)
	require.NoError(t, err)
	assert.Equal(t, "Phone 2", updated.Name)
	assert.Equal(t, "Gadgets", updated.Category.Name)
	assert.NotContains(t, f.cache.entries, phone.ID)

	reloaded, err := f.products.GetProductByID(ctx, phone.ID)
	require.NoError(t, err)
	assert.Equal(t, 250.0, reloaded.Price)
	assert.Equal(t, 7, reloaded.Inventory)
	assert.Equal(t, "Gadgets", reloaded.Category.Name)

	_, err = f.products.UpdateProduct(ctx, &UpdateProductRequest{
		Name: "Tablet", Brand: "Acme", Category: CategoryRequest{Name: "Electronics"},
	}, phone.ID)
	assert.ErrorIs(t, err, apperror.ErrAlreadyExists)

	_, err = f.products.UpdateProduct(ctx, &UpdateProductRequest{
		Name: "Ghost", Brand: "Acme", Category: CategoryRequest{Name: "Electronics"},
	}, 999)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.EqualError(t, err, "Product not found!")
}

func TestDeleteProductSeversReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	phone := f.addProduct(t, "Phone", "Acme", "Electronics")
	case1 := f.addProduct(t, "Case", "Acme", "Electronics")

	user := &model.User{FirstName: "A", LastName: "B", Email: "a@b.c", Password: "x"}
	require.NoError(t, f.db.Create(user).Error)
	cart := &model.Cart{UserID: user.ID, Items: []model.CartItem{
		{Quantity: 2, UnitPrice: 100, TotalPrice: 200, ProductID: &phone.ID},
		{Quantity: 1, UnitPrice: 15, TotalPrice: 15, ProductID: &case1.ID},
	}}
	cart.RecalculateTotal()
	require.NoError(t, f.db.Create(cart).Error)

	order := &model.Order{UserID: user.ID, Items: []model.OrderItem{
		{Quantity: 1, Price: 100, ProductID: &phone.ID},
	}}
	require.NoError(t, f.db.Create(order).Error)

	_, err := f.images.SaveImages(ctx, phone.ID, []UploadedFile{
		memFile{name: "a.png", contentType: "image/png", data: []byte("a")},
	})
	require.NoError(t, err)

	require.NoError(t, f.products.DeleteProductByID(ctx, phone.ID))

	_, err = f.products.GetProductByID(ctx, phone.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	var reloadedCart model.Cart
	require.NoError(t, f.db.Preload("Items").First(&reloadedCart, cart.ID).Error)
	require.Len(t, reloadedCart.Items, 1)
	assert.Equal(t, case1.ID, *reloadedCart.Items[0].ProductID)
	assert.InDelta(t, 15, reloadedCart.TotalAmount, 1e-9)

	var orderItem model.OrderItem
	require.NoError(t, f.db.First(&orderItem, order.Items[0].ID).Error)
	assert.Nil(t, orderItem.ProductID)
	assert.Equal(t, 100.0, orderItem.Price)

	var images int64
	require.NoError(t, f.db.Model(&model.Image{}).Count(&images).Error)
	assert.Zero(t, images)

	// the category outlives its product
	_, found, err := f.categories.GetCategoryByName(ctx, "Electronics")
	require.NoError(t, err)
	assert.True(t, found)

	assert.Contains(t, f.events.actions(), "product_deleted")
	assert.Contains(t, f.cache.invalidated, phone.ID)

	err = f.products.DeleteProductByID(ctx, phone.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestProductQueriesAndConversion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	phone := f.addProduct(t, "Phone", "Acme", "Electronics")
	f.addProduct(t, "Smartphone", "Zeta", "Electronics")
	f.addProduct(t, "Go Guide", "Acme", "Books")

	_, err := f.images.SaveImages(ctx, phone.ID, []UploadedFile{
		memFile{name: "front.png", contentType: "image/png", data: []byte("1")},
		memFile{name: "back.png", contentType: "image/png", data: []byte("2")},
	})
	require.NoError(t, err)

	all, err := f.products.GetAllProducts(ctx)
	require.NoError(t, err)
	converted, err := f.products.GetConvertedProducts(ctx, all)
	require.NoError(t, err)
	require.Len(t, converted, 3)
	assert.Equal(t, []string{"Phone", "Smartphone", "Go Guide"},
		[]string{converted[0].Name, converted[1].Name, converted[2].Name})
	require.Len(t, converted[0].Images, 2)
	assert.Equal(t, "front.png", converted[0].Images[0].FileName)
	assert.Empty(t, converted[1].Images)

	byCategory, err := f.products.GetProductsByCategory(ctx, "Electronics")
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	byBrand, err := f.products.GetProductsByBrand(ctx, "Acme")
	require.NoError(t, err)
	assert.Len(t, byBrand, 2)

	byCategoryBrand, err := f.products.GetProductsByCategoryAndBrand(ctx, "Electronics", "Zeta")
	require.NoError(t, err)
	require.Len(t, byCategoryBrand, 1)
	assert.Equal(t, "Smartphone", byCategoryBrand[0].Name)

	byBrandName, err := f.products.GetProductsByBrandAndName(ctx, "Acme", "Phone")
	require.NoError(t, err)
	assert.Len(t, byBrandName, 1)

	byName, err := f.products.GetProductsByName(ctx, "phone")
	require.NoError(t, err)
	assert.Len(t, byName, 2)

	none, err := f.products.GetProductsByBrand(ctx, "Nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetProductResponseByIDUsesCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	phone := f.addProduct(t, "Phone", "Acme", "Electronics")

	first, err := f.products.GetProductResponseByID(ctx, phone.ID)
	require.NoError(t, err)
	assert.Equal(t, "Phone", first.Name)

	// a cached entry is served without touching the database
	stale := f.cache.entries[phone.ID]
	stale.Name = "from cache"
	f.cache.entries[phone.ID] = stale

	second, err := f.products.GetProductResponseByID(ctx, phone.ID)
	require.NoError(t, err)
	assert.Equal(t, "from cache", second.Name)

	_, err = f.products.GetProductResponseByID(ctx, 999)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
