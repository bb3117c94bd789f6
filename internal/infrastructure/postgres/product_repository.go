package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asmendustri/asm-endustri-api/internal/domain/entity"
	"github.com/asmendustri/asm-endustri-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements the ProductRepository port over PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository builds the persistence adapter for products.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `id, name, description, category, price, image_path, catalog_path, specifications, is_active, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.Price,
		&p.ImagePath, &p.CatalogPath, &p.Specifications, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persists a new product and returns its generated ID.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) (int64, error) {
	query := `
		INSERT INTO products (name, description, category, price, image_path, catalog_path, specifications)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		p.Name, p.Description, p.Category, p.Price, p.ImagePath, p.CatalogPath, p.Specifications,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

// GetByID fetches a product regardless of is_active (admin view).
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return p, nil
}

// GetActiveByID fetches an active product (public detail view).
func (r *ProductRepo) GetActiveByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND is_active = true`
	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active product: %w", err)
	}
	return p, nil
}

// ListActive lists active products newest first, optionally filtered by
// category and a name/description search term.
func (r *ProductRepo) ListActive(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active = true`
	args := []any{}

	n := 1
	if f.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", n)
		args = append(args, f.Category)
		n++
	}
	if f.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", n, n)
		args = append(args, "%"+f.Search+"%")
		n++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", n, n+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListCategories returns the distinct non-empty categories of active products.
func (r *ProductRepo) ListCategories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM products WHERE is_active = true AND category <> '' ORDER BY category`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var cats []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// Update applies a partial update, building the SET clause field by field.
// Returns false when no row matched the ID.
func (r *ProductRepo) Update(ctx context.Context, id int64, u repository.ProductUpdate) (bool, error) {
	sets := []string{}
	args := []any{}
	n := 1

	add := func(col string, val any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, val)
		n++
	}

	if u.Name != nil {
		add("name", *u.Name)
	}
	if u.Description != nil {
		add("description", *u.Description)
	}
	if u.Category != nil {
		add("category", *u.Category)
	}
	if u.Price != nil {
		add("price", *u.Price)
	}
	if u.Specifications != nil {
		add("specifications", []byte(*u.Specifications))
	}
	if u.ImagePath != nil {
		add("image_path", *u.ImagePath)
	}
	if u.CatalogPath != nil {
		add("catalog_path", *u.CatalogPath)
	}
	if u.IsActive != nil {
		add("is_active", *u.IsActive)
	}
	if len(sets) == 0 {
		return false, nil
	}
	sets = append(sets, "updated_at = now()")

	query := "UPDATE products SET "
	for i, s := range sets {
		if i > 0 {
			query += ", "
		}
		query += s
	}
	query += fmt.Sprintf(" WHERE id = $%d", n)
	args = append(args, id)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update product: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a product row. Uploaded files it references stay on disk;
// cleanup goes through the upload delete endpoint.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
