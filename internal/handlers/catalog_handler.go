package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"storeadmin/internal/models"
	"storeadmin/internal/services"
)

// CatalogHandler serves the read-only reference entities of a store:
// billboards, categories, sizes and colors.
type CatalogHandler struct {
	service *services.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{service: service, logger: logger}
}

// RegisterRoutes registers the catalog read routes under /:storeId.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	store := router.Group("/:storeId")
	store.Get("/billboards", h.HandleListBillboards)
	store.Get("/billboards/:billboardId", h.HandleGetBillboard)
	store.Get("/categories", h.HandleListCategories)
	store.Get("/categories/:categoryId", h.HandleGetCategory)
	store.Get("/sizes", h.HandleListSizes)
	store.Get("/sizes/:sizeId", h.HandleGetSize)
	store.Get("/colors", h.HandleListColors)
	store.Get("/colors/:colorId", h.HandleGetColor)
}

func (h *CatalogHandler) HandleListBillboards(c *fiber.Ctx) error {
	billboards, err := h.service.ListBillboards(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return h.respondError(c, "BILLBOARD_LIST", err)
	}
	return c.JSON(billboards)
}

func (h *CatalogHandler) HandleGetBillboard(c *fiber.Ctx) error {
	billboard, err := h.service.GetBillboard(c.UserContext(), c.Params("billboardId"))
	if err != nil {
		return h.respondError(c, "BILLBOARD_GET", err)
	}
	return c.JSON(billboard)
}

func (h *CatalogHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return h.respondError(c, "CATEGORY_LIST", err)
	}
	return c.JSON(categories)
}

func (h *CatalogHandler) HandleGetCategory(c *fiber.Ctx) error {
	category, err := h.service.GetCategory(c.UserContext(), c.Params("categoryId"))
	if err != nil {
		return h.respondError(c, "CATEGORY_GET", err)
	}
	return c.JSON(category)
}

func (h *CatalogHandler) HandleListSizes(c *fiber.Ctx) error {
	sizes, err := h.service.ListSizes(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return h.respondError(c, "SIZE_LIST", err)
	}
	return c.JSON(sizes)
}

func (h *CatalogHandler) HandleGetSize(c *fiber.Ctx) error {
	size, err := h.service.GetSize(c.UserContext(), c.Params("sizeId"))
	if err != nil {
		return h.respondError(c, "SIZE_GET", err)
	}
	return c.JSON(size)
}

func (h *CatalogHandler) HandleListColors(c *fiber.Ctx) error {
	colors, err := h.service.ListColors(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return h.respondError(c, "COLOR_LIST", err)
	}
	return c.JSON(colors)
}

func (h *CatalogHandler) HandleGetColor(c *fiber.Ctx) error {
	color, err := h.service.GetColor(c.UserContext(), c.Params("colorId"))
	if err != nil {
		return h.respondError(c, "COLOR_GET", err)
	}
	return c.JSON(color)
}

func (h *CatalogHandler) respondError(c *fiber.Ctx, op string, err error) error {
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
