package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"storeadmin/internal/middleware"
	"storeadmin/internal/models"
	"storeadmin/internal/services"
	"storeadmin/internal/validation"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{service: service, logger: logger}
}

// RegisterRoutes registers the product routes under /:storeId/products.
// Reads are public; mutations resolve the caller identity and let the
// service enforce authentication and store ownership.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, authService *services.AuthService) {
	products := router.Group("/:storeId/products")
	products.Get("/", h.HandleListProducts)
	products.Get("/:productId", h.HandleGetProduct)

	identify := middleware.Identify(authService)
	products.Post("/", identify, h.HandleCreateProduct)
	products.Patch("/:productId", identify, h.HandleUpdateProduct)
	products.Delete("/:productId", identify, h.HandleDeleteProduct)
}

// HandleListProducts retrieves all products of a store.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return h.respondError(c, "PRODUCT_LIST", err)
	}
	return c.JSON(products)
}

// HandleGetProduct retrieves a single product with its associations.
// An unknown id yields a null body, not a 404.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.UserContext(), c.Params("productId"))
	if err != nil {
		return h.respondError(c, "PRODUCT_GET", err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product under an owned store.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var payload validation.ProductPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	product, err := h.service.CreateProduct(c.UserContext(), middleware.UserID(c), c.Params("storeId"), payload)
	if err != nil {
		return h.respondError(c, "PRODUCT_POST", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct replaces a product's scalar fields and image set.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var payload validation.ProductPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	product, err := h.service.UpdateProduct(c.UserContext(), middleware.UserID(c), c.Params("storeId"), c.Params("productId"), payload)
	if err != nil {
		return h.respondError(c, "PRODUCT_PATCH", err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes a product under an owned store.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	result, err := h.service.DeleteProduct(c.UserContext(), middleware.UserID(c), c.Params("storeId"), c.Params("productId"))
	if err != nil {
		return h.respondError(c, "PRODUCT_DELETE", err)
	}
	return c.JSON(result)
}

// respondError maps domain errors to their HTTP status and message; anything
// else is logged with the operation tag and reported as a bare 500.
func (h *ProductHandler) respondError(c *fiber.Ctx, op string, err error) error {
	var domainErr *models.DomainError
	if errors.As(err, &domainErr) {
		return c.Status(statusForCode(domainErr.Code)).JSON(fiber.Map{
			"message": domainErr.Message,
		})
	}
	h.logger.Error().Err(err).Str("op", op).Msg("internal error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal Error",
	})
}

func statusForCode(code string) int {
	switch code {
	case models.ErrCodeValidation:
		return fiber.StatusBadRequest
	case models.ErrCodeUnauthenticated:
		return fiber.StatusUnauthorized
	case models.ErrCodeUnauthorized:
		return fiber.StatusForbidden
	case models.ErrCodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
