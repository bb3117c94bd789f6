package usecase

import (
	"context"

	"github.com/asmendustri/asm-endustri-api/internal/application/dto"
	"github.com/asmendustri/asm-endustri-api/internal/domain"
	"github.com/asmendustri/asm-endustri-api/internal/domain/entity"
	"github.com/asmendustri/asm-endustri-api/internal/domain/repository"
)

// GalleryUseCase public gallery listing and admin CRUD.
type GalleryUseCase struct {
	repo repository.GalleryRepository
}

// NewGalleryUseCase builds the gallery use case.
func NewGalleryUseCase(repo repository.GalleryRepository) *GalleryUseCase {
	return &GalleryUseCase{repo: repo}
}

// List returns active gallery items, newest first.
func (uc *GalleryUseCase) List(ctx context.Context) ([]*dto.GalleryItemResponse, error) {
	items, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.GalleryItemResponse, 0, len(items))
	for _, g := range items {
		out = append(out, toGalleryResponse(g))
	}
	return out, nil
}

// Create persists a new gallery item.
func (uc *GalleryUseCase) Create(ctx context.Context, in dto.CreateGalleryItemRequest) (int64, error) {
	if in.ImagePath == "" {
		return 0, domain.ErrInvalidInput
	}
	return uc.repo.Create(ctx, &entity.GalleryItem{
		Title:       in.Title,
		Description: in.Description,
		ImagePath:   in.ImagePath,
		Category:    in.Category,
	})
}

// Update replaces the editable fields of a gallery item.
func (uc *GalleryUseCase) Update(ctx context.Context, id int64, in dto.UpdateGalleryItemRequest) error {
	if in.ImagePath == "" {
		return domain.ErrInvalidInput
	}
	found, err := uc.repo.Update(ctx, &entity.GalleryItem{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		ImagePath:   in.ImagePath,
		Category:    in.Category,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a gallery item.
func (uc *GalleryUseCase) Delete(ctx context.Context, id int64) error {
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

func toGalleryResponse(g *entity.GalleryItem) *dto.GalleryItemResponse {
	return &dto.GalleryItemResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		ImagePath:   g.ImagePath,
		Category:    g.Category,
		IsActive:    g.IsActive,
		CreatedAt:   g.CreatedAt,
	}
}
