package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asmendustri/asm-endustri-api/internal/domain/entity"
	"github.com/asmendustri/asm-endustri-api/internal/domain/repository"
)

var _ repository.GalleryRepository = (*GalleryRepo)(nil)

// GalleryRepo implements the GalleryRepository port over PostgreSQL.
type GalleryRepo struct {
	pool *pgxpool.Pool
}

// NewGalleryRepository builds the persistence adapter for gallery items.
func NewGalleryRepository(pool *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{pool: pool}
}

// Create persists a gallery item and returns its generated ID.
func (r *GalleryRepo) Create(ctx context.Context, item *entity.GalleryItem) (int64, error) {
	query := `
		INSERT INTO gallery (title, description, image_path, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		item.Title, item.Description, item.ImagePath, item.Category,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert gallery item: %w", err)
	}
	return id, nil
}

// ListActive lists active gallery items newest first.
func (r *GalleryRepo) ListActive(ctx context.Context) ([]*entity.GalleryItem, error) {
	query := `
		SELECT id, title, description, image_path, category, is_active, created_at
		FROM gallery WHERE is_active = true ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	defer rows.Close()

	var list []*entity.GalleryItem
	for rows.Next() {
		var g entity.GalleryItem
		if err := rows.Scan(&g.ID, &g.Title, &g.Description, &g.ImagePath, &g.Category, &g.IsActive, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan gallery item: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Update replaces the editable fields of a gallery item.
func (r *GalleryRepo) Update(ctx context.Context, item *entity.GalleryItem) (bool, error) {
	query := `
		UPDATE gallery SET title = $2, description = $3, image_path = $4, category = $5, is_active = $6
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		item.ID, item.Title, item.Description, item.ImagePath, item.Category, item.IsActive,
	)
	if err != nil {
		return false, fmt.Errorf("update gallery item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a gallery item by ID.
func (r *GalleryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM gallery WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete gallery item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
