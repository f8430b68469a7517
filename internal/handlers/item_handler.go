package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lostfound-app/backend/internal/dto"
	"github.com/lostfound-app/backend/internal/middleware"
	"github.com/lostfound-app/backend/internal/models"
	"github.com/lostfound-app/backend/internal/services"
)

type ItemHandler struct {
	itemService *services.ItemService
}

func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// --- Public reads ---

func (h *ItemHandler) GetAll(c *fiber.Ctx) error {
	items, err := h.itemService.ListAll()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}

func (h *ItemHandler) GetLost(c *fiber.Ctx) error {
	items, err := h.itemService.ListByStatus(models.StatusLost)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}

func (h *ItemHandler) GetFound(c *fiber.Ctx) error {
	items, err := h.itemService.ListByStatus(models.StatusFound)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}

func (h *ItemHandler) Search(c *fiber.Ctx) error {
	items, err := h.itemService.Search(c.Query("q"))
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: ve.Message})
		}
		return internalError(c, err)
	}
	return c.JSON(items)
}

func (h *ItemHandler) Filter(c *fiber.Ctx) error {
	items, err := h.itemService.Filter(c.Query("category"), c.Query("status"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}

func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return itemNotFound(c)
	}

	item, err := h.itemService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return itemNotFound(c)
		}
		return internalError(c, err)
	}
	return c.JSON(item)
}

// --- Protected writes ---

func (h *ItemHandler) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return notAuthenticated(c)
	}

	var req dto.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body",
		})
	}

	item, err := h.itemService.Create(user.ID, &req)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: ve.Message})
		}
		return internalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *ItemHandler) Update(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return notAuthenticated(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return itemNotFound(c)
	}

	var req dto.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body",
		})
	}

	item, err := h.itemService.Update(id, user.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			return itemNotFound(c)
		case errors.Is(err, services.ErrNotOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Message: "Not authorized to update this item",
			})
		}
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: ve.Message})
		}
		return internalError(c, err)
	}

	return c.JSON(item)
}

func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return notAuthenticated(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return itemNotFound(c)
	}

	if err := h.itemService.Delete(id, user.ID); err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			return itemNotFound(c)
		case errors.Is(err, services.ErrNotOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Message: "Not authorized to delete this item",
			})
		}
		return internalError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Item deleted successfully"})
}

// GetMyItems lists the caller's own listings; the owner scope always comes
// from the token, never a request parameter.
func (h *ItemHandler) GetMyItems(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return notAuthenticated(c)
	}

	items, err := h.itemService.ListByOwner(user.ID)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}

func notAuthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Message: "Not authorized, token failed",
	})
}

func itemNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Message: "Item not found",
	})
}
