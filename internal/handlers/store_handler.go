package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"storeadmin/internal/middleware"
	"storeadmin/internal/models"
	"storeadmin/internal/services"
)

// StoreHandler handles HTTP requests for stores.
type StoreHandler struct {
	service *services.StoreService
	logger  zerolog.Logger
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(service *services.StoreService, logger zerolog.Logger) *StoreHandler {
	return &StoreHandler{service: service, logger: logger}
}

// RegisterRoutes registers the store routes. Both require authentication.
func (h *StoreHandler) RegisterRoutes(router fiber.Router, authService *services.AuthService) {
	stores := router.Group("/stores", middleware.AuthRequired(authService))
	stores.Post("/", h.HandleCreateStore)
	stores.Get("/", h.HandleListStores)
}

// CreateStoreRequest represents the request body for store creation.
type CreateStoreRequest struct {
	Name string `json:"name"`
}

// HandleCreateStore creates a store owned by the calling user.
func (h *StoreHandler) HandleCreateStore(c *fiber.Ctx) error {
	var req CreateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	store, err := h.service.CreateStore(c.UserContext(), middleware.UserID(c), req.Name)
	if err != nil {
		return h.respondError(c, "STORE_POST", err)
	}
	return c.Status(fiber.StatusCreated).JSON(store)
}

// HandleListStores returns the calling user's stores.
func (h *StoreHandler) HandleListStores(c *fiber.Ctx) error {
	stores, err := h.service.ListStores(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return h.respondError(c, "STORE_LIST", err)
	}
	return c.JSON(stores)
}

func (h *StoreHandler) respondError(c *fiber.Ctx, op string, err error) error {
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
