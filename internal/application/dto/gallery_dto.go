package dto

import "time"

// CreateGalleryItemRequest input for creating a gallery item (admin).
type CreateGalleryItemRequest struct {
	Title       string `json:"title" validate:"omitempty,max=255"`
	Description string `json:"description" validate:"omitempty"`
	ImagePath   string `json:"image_path" validate:"required,max=500"`
	Category    string `json:"category" validate:"omitempty,max=100"`
}

// UpdateGalleryItemRequest full replacement of the editable fields.
type UpdateGalleryItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImagePath   string `json:"image_path" validate:"required,max=500"`
	Category    string `json:"category"`
	IsActive    bool   `json:"is_active"`
}

// GalleryItemResponse a gallery item as exposed to clients.
type GalleryItemResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImagePath   string    `json:"image_path"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
