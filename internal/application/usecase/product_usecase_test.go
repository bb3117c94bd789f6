package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmendustri/asm-endustri-api/internal/application/dto"
	"github.com/asmendustri/asm-endustri-api/internal/application/usecase"
	"github.com/asmendustri/asm-endustri-api/internal/domain"
	"github.com/asmendustri/asm-endustri-api/internal/domain/entity"
	"github.com/asmendustri/asm-endustri-api/internal/domain/repository"
)

type fakeProductRepo struct {
	created    []*entity.Product
	active     map[int64]*entity.Product
	lastUpdate repository.ProductUpdate
	updateHit  bool
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) (int64, error) {
	f.created = append(f.created, p)
	return int64(len(f.created)), nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return f.active[id], nil
}

func (f *fakeProductRepo) GetActiveByID(_ context.Context, id int64) (*entity.Product, error) {
	return f.active[id], nil
}

func (f *fakeProductRepo) ListActive(context.Context, repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.active))
	for _, p := range f.active {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) ListCategories(context.Context) ([]string, error) {
	return []string{"aks", "şanzıman"}, nil
}

func (f *fakeProductRepo) Update(_ context.Context, id int64, update repository.ProductUpdate) (bool, error) {
	f.lastUpdate = update
	f.updateHit = true
	_, ok := f.active[id]
	return ok, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	_, ok := f.active[id]
	delete(f.active, id)
	return ok, nil
}

func strPtr(s string) *string { return &s }

func TestProductCreate_ParsesPriceAndSpecs(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)

	id, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:           "Mercedes Actros Aks",
		Category:       "aks",
		Price:          "15750.50",
		Specifications: `{"marka":"Mercedes","model":"Actros"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	p := repo.created[0]
	assert.True(t, p.Price.Equal(decimal.RequireFromString("15750.50")))
	assert.JSONEq(t, `{"marka":"Mercedes","model":"Actros"}`, string(p.Specifications))
}

func TestProductCreate_EmptyPriceDefaultsToZero(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Parça", Category: "aks"})
	require.NoError(t, err)
	assert.True(t, repo.created[0].Price.IsZero())
}

func TestProductCreate_RejectsBadInput(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "x", Price: "abc"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Name: "x", Specifications: `{"broken":`})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, repo.created)
}

func TestProductUpdate_PartialFields(t *testing.T) {
	repo := &fakeProductRepo{active: map[int64]*entity.Product{5: {ID: 5}}}
	uc := usecase.NewProductUseCase(repo)

	err := uc.Update(context.Background(), 5, dto.UpdateProductRequest{Price: strPtr("99.90")})
	require.NoError(t, err)

	require.NotNil(t, repo.lastUpdate.Price)
	assert.Equal(t, "99.90", *repo.lastUpdate.Price)
	assert.Nil(t, repo.lastUpdate.Name, "untouched fields stay nil")
}

func TestProductUpdate_EmptyUpdateRejected(t *testing.T) {
	repo := &fakeProductRepo{active: map[int64]*entity.Product{5: {ID: 5}}}
	uc := usecase.NewProductUseCase(repo)

	err := uc.Update(context.Background(), 5, dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, repo.updateHit, "nothing to update must not reach the repository")
}

func TestProductUpdate_UnknownID(t *testing.T) {
	repo := &fakeProductRepo{active: map[int64]*entity.Product{}}
	uc := usecase.NewProductUseCase(repo)

	err := uc.Update(context.Background(), 42, dto.UpdateProductRequest{Name: strPtr("Yeni Ad")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductGetActive_AbsentIsNilNil(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{active: map[int64]*entity.Product{}})

	resp, err := uc.GetActive(context.Background(), 404)
	assert.NoError(t, err)
	assert.Nil(t, resp)
}

func TestProductResponse_PriceFixedTwoDecimals(t *testing.T) {
	repo := &fakeProductRepo{active: map[int64]*entity.Product{
		1: {ID: 1, Name: "Aks", Price: decimal.RequireFromString("1500")},
	}}
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.GetActive(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "1500.00", resp.Price)
}

func TestProductDelete_UnknownID(t *testing.T) {
	repo := &fakeProductRepo{active: map[int64]*entity.Product{1: {ID: 1}}}
	uc := usecase.NewProductUseCase(repo)

	assert.NoError(t, uc.Delete(context.Background(), 1))
	assert.ErrorIs(t, uc.Delete(context.Background(), 1), domain.ErrNotFound)
}
