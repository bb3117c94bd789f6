package repository

import (
	"context"

	"github.com/asmendustri/asm-endustri-api/internal/domain/entity"
)

// GalleryRepository defines the persistence port for GalleryItem (DIP).
type GalleryRepository interface {
	Create(ctx context.Context, item *entity.GalleryItem) (int64, error)
	ListActive(ctx context.Context) ([]*entity.GalleryItem, error)
	Update(ctx context.Context, item *entity.GalleryItem) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
