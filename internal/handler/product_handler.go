package handler

import (
	"boxpoint-api/internal/model"
	"boxpoint-api/internal/service"
	"boxpoint-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// respondList converts the products and wraps them in the envelope
func (h *ProductHandler) respondList(c *fiber.Ctx, message string, products []model.Product) error {
	converted, err := h.service.GetConvertedProducts(c.UserContext(), products)
	if err != nil {
		return err
	}
	return response.OK(c, message, converted)
}

// GetAllProducts
// GET /products/all
func (h *ProductHandler) GetAllProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return err
	}
	return h.respondList(c, "Found!", products)
}

// GetProductByID
// GET /products/product/:id/product
func (h *ProductHandler) GetProductByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.service.GetProductResponseByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return response.OK(c, "Found!", product)
}

// AddProduct
// POST /products/add
func (h *ProductHandler) AddProduct(c *fiber.Ctx) error {
	var req service.AddProductRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	product, err := h.service.AddProduct(c.UserContext(), &req)
	if err != nil {
		return err
	}
	dto, err := h.service.ConvertToDto(c.UserContext(), product)
	if err != nil {
		return err
	}
	return response.OK(c, "Product successfully added!", dto)
}

// UpdateProduct
// PUT /products/product/:id/update
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req service.UpdateProductRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	product, err := h.service.UpdateProduct(c.UserContext(), &req, id)
	if err != nil {
		return err
	}
	dto, err := h.service.ConvertToDto(c.UserContext(), product)
	if err != nil {
		return err
	}
	return response.OK(c, "Product successfully updated!", dto)
}

// DeleteProduct
// DELETE /products/product/:id/delete
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteProductByID(c.UserContext(), id); err != nil {
		return err
	}
	return response.OK(c, "Product successfully deleted!", id)
}

// GetProductsByBrandAndName
// GET /products/products/by/brand-and-name?brandName=&productName=
func (h *ProductHandler) GetProductsByBrandAndName(c *fiber.Ctx) error {
	products, err := h.service.GetProductsByBrandAndName(c.UserContext(), c.Query("brandName"), c.Query("productName"))
	if err != nil {
		return err
	}
	return h.respondList(c, "success", products)
}

// GetProductsByCategoryAndBrand
// GET /products/products/by/category-and-brand?category=&brandName=
func (h *ProductHandler) GetProductsByCategoryAndBrand(c *fiber.Ctx) error {
	products, err := h.service.GetProductsByCategoryAndBrand(c.UserContext(), c.Query("category"), c.Query("brandName"))
	if err != nil {
		return err
	}
	return h.respondList(c, "success", products)
}

// GetProductsByName matches a name substring
// GET /products/products/:name/products
func (h *ProductHandler) GetProductsByName(c *fiber.Ctx) error {
	products, err := h.service.GetProductsByName(c.UserContext(), c.Params("name"))
	if err != nil {
		return err
	}
	return h.respondList(c, "success", products)
}

// GetProductsByBrand
// GET /products/product/by-brand?brand=
func (h *ProductHandler) GetProductsByBrand(c *fiber.Ctx) error {
	products, err := h.service.GetProductsByBrand(c.UserContext(), c.Query("brand"))
	if err != nil {
		return err
	}
	return h.respondList(c, "success", products)
}

// GetProductsByCategory
// GET /products/product/:category/all/products
func (h *ProductHandler) GetProductsByCategory(c *fiber.Ctx) error {
	products, err := h.service.GetProductsByCategory(c.UserContext(), c.Params("category"))
	if err != nil {
		return err
	}
	return h.respondList(c, "success", products)
}
