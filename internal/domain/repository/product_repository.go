package repository

import (
	"context"

	"github.com/asmendustri/asm-endustri-api/internal/domain/entity"
)

// ProductFilter narrows public product listings.
type ProductFilter struct {
	Category string
	Search   string // matches name or description
	Limit    int
	Offset   int
}

// ProductUpdate carries the fields of a partial update. Nil means "leave as is".
type ProductUpdate struct {
	Name           *string
	Description    *string
	Category       *string
	Price          *string // decimal string, validated in the use case
	Specifications *string // JSON document
	ImagePath      *string
	CatalogPath    *string
	IsActive       *bool
}

// Empty reports whether the update touches nothing.
func (u ProductUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Category == nil &&
		u.Price == nil && u.Specifications == nil && u.ImagePath == nil &&
		u.CatalogPath == nil && u.IsActive == nil
}

// ProductRepository defines the persistence port for Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetActiveByID returns only active products (public detail view).
	GetActiveByID(ctx context.Context, id int64) (*entity.Product, error)
	ListActive(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id int64, update ProductUpdate) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
