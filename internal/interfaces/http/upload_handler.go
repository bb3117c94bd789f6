package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/asmendustri/asm-endustri-api/internal/application/dto"
	"github.com/asmendustri/asm-endustri-api/internal/domain"
	"github.com/asmendustri/asm-endustri-api/internal/infrastructure/storage"
)

// UploadHandler handles admin file uploads and deletion. The multipart field
// name doubles as the upload category, as the admin dashboard expects.
type UploadHandler struct {
	store *storage.Store
}

// NewUploadHandler builds the handler.
func NewUploadHandler(store *storage.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// ProductImage godoc
// @Summary      Upload a product image
// @Tags         upload
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        product_image  formData  file  true  "Image file (jpeg/png/gif/webp)"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Router       /api/upload/product-image [post]
func (h *UploadHandler) ProductImage(c *fiber.Ctx) error {
	return h.save(c, storage.CategoryProductImage, "product_image", "Image uploaded successfully")
}

// ProductCatalog godoc
// @Summary      Upload a product catalog document
// @Tags         upload
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        product_catalog  formData  file  true  "Catalog file (image, PDF or Word)"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Router       /api/upload/product-catalog [post]
func (h *UploadHandler) ProductCatalog(c *fiber.Ctx) error {
	return h.save(c, storage.CategoryProductCatalog, "product_catalog", "Catalog uploaded successfully")
}

// GalleryImage godoc
// @Summary      Upload a gallery image
// @Tags         upload
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        gallery_image  formData  file  true  "Image file (jpeg/png/gif/webp)"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Router       /api/upload/gallery-image [post]
func (h *UploadHandler) GalleryImage(c *fiber.Ctx) error {
	return h.save(c, storage.CategoryGalleryImage, "gallery_image", "Gallery image uploaded successfully")
}

func (h *UploadHandler) save(c *fiber.Ctx, category storage.Category, field, okMessage string) error {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "No file uploaded"})
	}
	saved, err := h.store.Save(c.Context(), category, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedMediaType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_MEDIA_TYPE", Message: "File type not allowed for this upload"})
		case errors.Is(err, domain.ErrFileTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "File exceeds the 10MB limit"})
		default:
			return internalError(c, "save upload", err)
		}
	}
	return c.JSON(dto.UploadResponse{
		Message:  okMessage,
		FileURL:  saved.PublicURL,
		Filename: saved.Filename,
	})
}

// Delete godoc
// @Summary      Delete an uploaded file
// @Tags         upload
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteFileRequest  true  "filePath as returned by an upload"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/upload/delete [delete]
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteFileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	if in.FilePath == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "File path required"})
	}
	if err := h.store.Delete(in.FilePath); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsafePath):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "UNSAFE_PATH", Message: "Invalid file path"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "File not found"})
		default:
			return internalError(c, "delete upload", err)
		}
	}
	return c.JSON(dto.MessageResponse{Message: "File deleted successfully"})
}
