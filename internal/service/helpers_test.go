package service

import (
	"context"
	"sync"
	"testing"

	"boxpoint-api/internal/model"
	"boxpoint-api/internal/repository"
	"boxpoint-api/internal/testdb"
	"boxpoint-api/internal/ws"

	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []ws.Event
}

func (p *recordingPublisher) Publish(event ws.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Action
	}
	return out
}

// memoryCache is an in-process ProductCache that records invalidations
type memoryCache struct {
	entries     map[uint]model.ProductResponse
	invalidated []uint
	purges      int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[uint]model.ProductResponse{}}
}

func (c *memoryCache) Get(_ context.Context, id uint) (*model.ProductResponse, bool) {
	r, ok := c.entries[id]
	if !ok {
		return nil, false
	}
	return &r, true
}

func (c *memoryCache) Set(_ context.Context, r *model.ProductResponse) {
	c.entries[r.ID] = *r
}

func (c *memoryCache) Invalidate(_ context.Context, ids ...uint) {
	for _, id := range ids {
		delete(c.entries, id)
		c.invalidated = append(c.invalidated, id)
	}
}

func (c *memoryCache) Purge(context.Context) {
	c.entries = map[uint]model.ProductResponse{}
	c.purges++
}

type fixture struct {
	db         *gorm.DB
	cache      *memoryCache
	events     *recordingPublisher
	categories CategoryService
	products   ProductService
	images     ImageService
	users      UserService
}

const testDownloadPath = "/api/v1/images/image/download/"

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.Open(t)
	f := &fixture{db: db, cache: newMemoryCache(), events: &recordingPublisher{}}

	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	imageRepo := repository.NewImageRepo(db)

	f.categories = NewCategoryService(categoryRepo, productRepo, db, f.cache, f.events)
	f.products = NewProductService(ProductServiceDeps{
		Products:   productRepo,
		Categories: categoryRepo,
		Images:     imageRepo,
		Carts:      repository.NewCartRepo(db),
		OrderItems: repository.NewOrderItemRepo(db),
		DB:         db,
		Cache:      f.cache,
		Events:     f.events,
	})
	f.images = NewImageService(imageRepo, f.products, db, f.cache, f.events, testDownloadPath)
	f.users = NewUserService(repository.NewUserRepo(db))
	return f
}

func (f *fixture) addProduct(t *testing.T, name, brand, category string) *model.Product {
	t.Helper()
	p, err := f.products.AddProduct(context.Background(), &AddProductRequest{
		Name:      name,
		Brand:     brand,
		Price:     10,
		Inventory: 5,
		Category:  CategoryRequest{Name: category},
	})
	if err != nil {
		t.Fatalf("add product %s: %v", name, err)
	}
	return p
}

type memFile struct {
	name        string
	contentType string
	data        []byte
	err         error
}

func (f memFile) Name() string        { return f.name }
func (f memFile) ContentType() string { return f.contentType }
func (f memFile) Bytes() ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}
