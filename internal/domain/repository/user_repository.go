package repository

import (
	"context"

	"github.com/asmendustri/asm-endustri-api/internal/domain/entity"
)

// UserRepository defines the persistence port for User (DIP).
// Implementations return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetIdentity fetches only id, email and role — the per-request lookup
	// the auth middleware performs.
	GetIdentity(ctx context.Context, id int64) (*entity.User, error)
}
