package handlers

import (
	"errors"
	"log"

	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/src")
	productRoutes.Post("/createProduct", h.HandleCreateProduct)
	productRoutes.Delete("/deleteProduct", h.HandleDeleteProduct)
	productRoutes.Get("/getAllProducts", h.HandleGetAllProducts)
	productRoutes.Get("/getProductById", h.HandleGetProductByID)
	productRoutes.Put("/updateProduct", h.HandleUpdateProduct)
}

// CreateProductRequest represents the request body for product creation.
// Price and quantity are required and must be positive; zero is rejected.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	Description string  `json:"description"`
	ImgURL      string  `json:"imgUrl"`
	UserID      string  `json:"userId" validate:"required"`
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Error in incoming data")
	}
	if err := h.validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Error in incoming data")
	}

	product := models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
		ImgURL:      req.ImgURL,
		UserID:      req.UserID,
	}
	if err := h.service.CreateProduct(&product); err != nil {
		if errors.Is(err, services.ErrProductExists) {
			return fail(c, fiber.StatusBadRequest, "Product already exists")
		}
		log.Printf("Error creating product %s: %v", req.Name, err)
		return fail(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"product": product,
	})
}

// HandleDeleteProduct removes a product and returns the deleted record.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil || req.ID == "" {
		return fail(c, fiber.StatusBadRequest, "No ID provided")
	}

	product, err := h.service.DeleteProduct(req.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "Product not found")
		}
		log.Printf("Error deleting product %s: %v", req.ID, err)
		return fail(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"product": product,
	})
}

// HandleGetAllProducts lists every product owned by the user named in the id
// query parameter.
func (h *ProductHandler) HandleGetAllProducts(c *fiber.Ctx) error {
	userID := c.Query("id")
	if userID == "" {
		return fail(c, fiber.StatusBadRequest, "No user ID provided")
	}

	products, err := h.service.GetProductsByOwner(userID)
	if err != nil {
		log.Printf("Error listing products for user %s: %v", userID, err)
		return fail(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return c.JSON(fiber.Map{
		"status":   "success",
		"products": products,
	})
}

// HandleGetProductByID looks up a product by the id query parameter. Unlike
// the sibling routes this one answers 200 on every outcome, a miss included.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id := c.Query("id")

	product, err := h.service.GetProductByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(fiber.Map{
				"status":  "fail",
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product %s: %v", id, err)
		return c.JSON(fiber.Map{
			"status":  "fail",
			"message": "Something went wrong",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"product": product,
	})
}

// UpdateProductRequest represents the request body for a product update.
// Absent name, price and quantity keep their stored values; description and
// imgUrl are written through as sent, so leaving them out clears them.
type UpdateProductRequest struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	ImgURL      string  `json:"imgUrl"`
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Error in incoming data")
	}
	if err := h.validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Error in incoming data")
	}

	product, err := h.service.UpdateProduct(services.ProductUpdate{
		ID:          req.ID,
		Name:        req.Name,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
		ImgURL:      req.ImgURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return fail(c, fiber.StatusNotFound, "Product not found")
		case errors.Is(err, services.ErrProductExists):
			return fail(c, fiber.StatusBadRequest, "Product already exists")
		}
		log.Printf("Error updating product %s: %v", req.ID, err)
		return fail(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"product": product,
	})
}
