package usecase

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/asmendustri/asm-endustri-api/internal/application/dto"
	"github.com/asmendustri/asm-endustri-api/internal/domain"
	"github.com/asmendustri/asm-endustri-api/internal/domain/entity"
	"github.com/asmendustri/asm-endustri-api/internal/domain/repository"
)

// ProductUseCase catalog operations: public listing/detail and admin CRUD.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the product use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List returns active products for the public catalog.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter) ([]*dto.ProductResponse, error) {
	products, err := uc.repo.ListActive(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetActive returns one active product, or nil when absent/inactive.
func (uc *ProductUseCase) GetActive(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetActiveByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Categories returns the distinct categories of active products.
func (uc *ProductUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.repo.ListCategories(ctx)
}

// Create validates and persists a new product.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (int64, error) {
	price := decimal.Zero
	if in.Price != "" {
		var err error
		if price, err = decimal.NewFromString(in.Price); err != nil {
			return 0, domain.ErrInvalidInput
		}
	}
	var specs json.RawMessage
	if in.Specifications != "" {
		if !json.Valid([]byte(in.Specifications)) {
			return 0, domain.ErrInvalidInput
		}
		specs = json.RawMessage(in.Specifications)
	}
	p := &entity.Product{
		Name:           in.Name,
		Description:    in.Description,
		Category:       in.Category,
		Price:          price,
		ImagePath:      in.ImagePath,
		CatalogPath:    in.CatalogPath,
		Specifications: specs,
	}
	return uc.repo.Create(ctx, p)
}

// Update applies a partial update. ErrInvalidInput when nothing is set or a
// field fails validation; ErrNotFound when the product does not exist.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) error {
	update := repository.ProductUpdate{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		ImagePath:   in.ImagePath,
		CatalogPath: in.CatalogPath,
		IsActive:    in.IsActive,
	}
	if in.Name != nil && *in.Name == "" {
		return domain.ErrInvalidInput
	}
	if in.Price != nil {
		if _, err := decimal.NewFromString(*in.Price); err != nil {
			return domain.ErrInvalidInput
		}
		update.Price = in.Price
	}
	if in.Specifications != nil {
		if !json.Valid([]byte(*in.Specifications)) {
			return domain.ErrInvalidInput
		}
		update.Specifications = in.Specifications
	}
	if update.Empty() {
		return domain.ErrInvalidInput
	}
	found, err := uc.repo.Update(ctx, id, update)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a product. Referenced upload files are left on disk; see
// the upload delete endpoint for cleanup.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Category:       p.Category,
		Price:          p.Price.StringFixed(2),
		ImagePath:      p.ImagePath,
		CatalogPath:    p.CatalogPath,
		Specifications: p.Specifications,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
