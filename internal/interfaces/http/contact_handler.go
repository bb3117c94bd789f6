package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/asmendustri/asm-endustri-api/internal/application/dto"
	"github.com/asmendustri/asm-endustri-api/internal/application/usecase"
	"github.com/asmendustri/asm-endustri-api/internal/domain"
)

// ContactHandler handles the public contact form and the admin inbox.
type ContactHandler struct {
	uc *usecase.ContactUseCase
}

// NewContactHandler builds the handler.
func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Submit godoc
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactSubmitRequest  true  "name, email, message (+ optional phone, subject)"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contact/submit [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var in dto.ContactSubmitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	if err := h.uc.Submit(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, a valid email and message are required"})
		}
		return internalError(c, "submit contact form", err)
	}
	return c.JSON(dto.MessageResponse{Message: "Mesajınız başarıyla gönderildi. En kısa sürede sizinle iletişime geçeceğiz."})
}

// Messages godoc
// @Summary      List contact messages
// @Tags         contact
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ContactMessageResponse
// @Router       /api/contact/messages [get]
func (h *ContactHandler) Messages(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, "list contact messages", err)
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Mark a message as read
// @Tags         contact
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Message ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contact/messages/{id}/read [put]
func (h *ContactHandler) MarkRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "A numeric id is required"})
	}
	if err := h.uc.MarkRead(c.Context(), int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Message not found"})
		}
		return internalError(c, "mark message read", err)
	}
	return c.JSON(dto.MessageResponse{Message: "Message marked as read"})
}

// Delete godoc
// @Summary      Delete a message
// @Tags         contact
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Message ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contact/messages/{id} [delete]
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "A numeric id is required"})
	}
	if err := h.uc.Delete(c.Context(), int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Message not found"})
		}
		return internalError(c, "delete message", err)
	}
	return c.JSON(dto.MessageResponse{Message: "Message deleted successfully"})
}
