package usecase

import (
	"context"
	"strings"

	"github.com/asmendustri/asm-endustri-api/internal/application/dto"
	"github.com/asmendustri/asm-endustri-api/internal/domain"
	"github.com/asmendustri/asm-endustri-api/internal/domain/entity"
	"github.com/asmendustri/asm-endustri-api/internal/domain/repository"
)

// defaultSubject used when the form leaves the subject blank, as the
// original site did.
const defaultSubject = "İletişim Formu"

// ContactUseCase public form intake and the admin inbox.
type ContactUseCase struct {
	repo repository.ContactRepository
}

// NewContactUseCase builds the contact use case.
func NewContactUseCase(repo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

// Submit stores a contact form submission. Email notification was retired;
// persisting the message is the whole operation.
func (uc *ContactUseCase) Submit(ctx context.Context, in dto.ContactSubmitRequest) error {
	name := strings.TrimSpace(in.Name)
	message := strings.TrimSpace(in.Message)
	if name == "" || message == "" || !strings.Contains(in.Email, "@") {
		return domain.ErrInvalidInput
	}
	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		subject = defaultSubject
	}
	_, err := uc.repo.Create(ctx, &entity.ContactMessage{
		Name:    name,
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:   strings.TrimSpace(in.Phone),
		Subject: subject,
		Message: message,
	})
	return err
}

// List returns every message for the admin inbox, newest first.
func (uc *ContactUseCase) List(ctx context.Context) ([]*dto.ContactMessageResponse, error) {
	msgs, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContactMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, &dto.ContactMessageResponse{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Phone:     m.Phone,
			Subject:   m.Subject,
			Message:   m.Message,
			IsRead:    m.IsRead,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

// MarkRead flags a message as read.
func (uc *ContactUseCase) MarkRead(ctx context.Context, id int64) error {
	found, err := uc.repo.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a message.
func (uc *ContactUseCase) Delete(ctx context.Context, id int64) error {
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}
