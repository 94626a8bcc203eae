package handler

import (
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Category  *CategoryHandler
	Product   *ProductHandler
	Image     *ImageHandler
	User      *UserHandler
	Auth      *AuthHandler
	Dashboard *DashboardHandler
}

// NewApp creates the Fiber app with the global error handler installed
func NewApp(name string, bodyLimit int) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      name,
		ErrorHandler: ErrorHandler,
		BodyLimit:    bodyLimit,
		UnescapePath: true,
	})
}

// RegisterRoutes mounts every endpoint on api. guard wraps the mutating
// routes; pass nil to leave them open.
func RegisterRoutes(api fiber.Router, h Handlers, guard fiber.Handler) {
	if guard == nil {
		guard = func(c *fiber.Ctx) error { return c.Next() }
	}

	// Auth Routes (No authentication required)
	auth := api.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/validate-token", h.Auth.ValidateToken)

	categories := api.Group("/categories")
	categories.Get("/all", h.Category.GetAllCategories)
	categories.Post("/add", guard, h.Category.AddCategory)
	categories.Get("/category/:id/category", h.Category.GetCategoryByID)
	categories.Get("/category/:name/name", h.Category.GetCategoryByName)
	categories.Put("/category/:id/update", guard, h.Category.UpdateCategory)
	categories.Delete("/category/:id/delete", guard, h.Category.DeleteCategory)

	products := api.Group("/products")
	products.Get("/all", h.Product.GetAllProducts)
	products.Post("/add", guard, h.Product.AddProduct)
	products.Get("/product/by-brand", h.Product.GetProductsByBrand)
	products.Get("/product/:id/product", h.Product.GetProductByID)
	products.Put("/product/:id/update", guard, h.Product.UpdateProduct)
	products.Delete("/product/:id/delete", guard, h.Product.DeleteProduct)
	products.Get("/product/:category/all/products", h.Product.GetProductsByCategory)
	products.Get("/products/by/brand-and-name", h.Product.GetProductsByBrandAndName)
	products.Get("/products/by/category-and-brand", h.Product.GetProductsByCategoryAndBrand)
	products.Get("/products/:name/products", h.Product.GetProductsByName)

	images := api.Group("/images")
	images.Post("/upload", guard, h.Image.UploadImages)
	images.Get("/image/download/:id", h.Image.DownloadImage)
	images.Put("/image/:id/update", guard, h.Image.UpdateImage)
	images.Delete("/image/:id/delete", guard, h.Image.DeleteImage)

	users := api.Group("/users")
	users.Get("/user/:id/user", h.User.GetUserByID)
	users.Post("/add", h.User.CreateUser)
	users.Put("/:id/update", guard, h.User.UpdateUser)
	users.Delete("/:id/delete", guard, h.User.DeleteUser)

	api.Get("/dashboard/stats", h.Dashboard.GetDashboardStats)
}
