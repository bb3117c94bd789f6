package dto

import (
	"encoding/json"
	"time"
)

// CreateProductRequest input for creating a product (admin).
type CreateProductRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=255"`
	Description    string `json:"description" validate:"omitempty"`
	Category       string `json:"category" validate:"omitempty,max=100"`
	Price          string `json:"price" validate:"omitempty,numeric"`
	Specifications string `json:"specifications" validate:"omitempty,json"`
	ImagePath      string `json:"image_path" validate:"omitempty,max=500"`
	CatalogPath    string `json:"catalog_path" validate:"omitempty,max=500"`
}

// UpdateProductRequest partial update; nil fields are left untouched.
type UpdateProductRequest struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	Category       *string `json:"category"`
	Price          *string `json:"price"`
	Specifications *string `json:"specifications"`
	ImagePath      *string `json:"image_path"`
	CatalogPath    *string `json:"catalog_path"`
	IsActive       *bool   `json:"is_active"`
}

// ProductResponse a product as exposed to clients.
type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Price          string          `json:"price"`
	ImagePath      string          `json:"image_path"`
	CatalogPath    string          `json:"catalog_path"`
	Specifications json.RawMessage `json:"specifications,omitempty"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreateProductResponse body returned after creating a product.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"productId"`
}
