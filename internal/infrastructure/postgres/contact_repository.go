package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asmendustri/asm-endustri-api/internal/domain/entity"
	"github.com/asmendustri/asm-endustri-api/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implements the ContactRepository port over PostgreSQL.
type ContactRepo struct {
	pool *pgxpool.Pool
}

// NewContactRepository builds the persistence adapter for contact messages.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{pool: pool}
}

// Create persists a contact form submission and returns its generated ID.
func (r *ContactRepo) Create(ctx context.Context, msg *entity.ContactMessage) (int64, error) {
	query := `
		INSERT INTO contact_messages (name, email, phone, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert contact message: %w", err)
	}
	return id, nil
}

// List returns all messages newest first (admin inbox).
func (r *ContactRepo) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	query := `
		SELECT id, name, email, phone, subject, message, is_read, created_at
		FROM contact_messages ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var list []*entity.ContactMessage
	for rows.Next() {
		var m entity.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// MarkRead flags a message as read.
func (r *ContactRepo) MarkRead(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE contact_messages SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("mark message read: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a message by ID.
func (r *ContactRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete contact message: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
