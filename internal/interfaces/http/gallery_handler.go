package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/asmendustri/asm-endustri-api/internal/application/dto"
	"github.com/asmendustri/asm-endustri-api/internal/application/usecase"
	"github.com/asmendustri/asm-endustri-api/internal/domain"
)

// GalleryHandler handles gallery requests: public listing plus admin CRUD.
type GalleryHandler struct {
	uc *usecase.GalleryUseCase
}

// NewGalleryHandler builds the handler.
func NewGalleryHandler(uc *usecase.GalleryUseCase) *GalleryHandler {
	return &GalleryHandler{uc: uc}
}

// List godoc
// @Summary      List active gallery items
// @Tags         gallery
// @Produce      json
// @Success      200  {array}  dto.GalleryItemResponse
// @Router       /api/gallery [get]
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, "list gallery", err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Create a gallery item
// @Tags         gallery
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGalleryItemRequest  true  "Gallery item data"
// @Success      201   {object}  fiber.Map
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/gallery [post]
func (h *GalleryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGalleryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "image_path is required"})
		}
		return internalError(c, "create gallery item", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Gallery item created successfully",
		"itemId":  id,
	})
}

// Update godoc
// @Summary      Update a gallery item
// @Tags         gallery
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "Gallery item ID"
// @Param        body  body  dto.UpdateGalleryItemRequest  true  "New field values"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/gallery/{id} [put]
func (h *GalleryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "A numeric id is required"})
	}
	var in dto.UpdateGalleryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	if err := h.uc.Update(c.Context(), int64(id), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "image_path is required"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Gallery item not found"})
		default:
			return internalError(c, "update gallery item", err)
		}
	}
	return c.JSON(dto.MessageResponse{Message: "Gallery item updated successfully"})
}

// Delete godoc
// @Summary      Delete a gallery item
// @Tags         gallery
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Gallery item ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "A numeric id is required"})
	}
	if err := h.uc.Delete(c.Context(), int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Gallery item not found"})
		}
		return internalError(c, "delete gallery item", err)
	}
	return c.JSON(dto.MessageResponse{Message: "Gallery item deleted successfully"})
}
