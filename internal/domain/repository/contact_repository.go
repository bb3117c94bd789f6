package repository

import (
	"context"

	"github.com/asmendustri/asm-endustri-api/internal/domain/entity"
)

// ContactRepository defines the persistence port for ContactMessage (DIP).
type ContactRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) (int64, error)
	List(ctx context.Context) ([]*entity.ContactMessage, error)
	MarkRead(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
