package auth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/asmendustri/asm-endustri-api/internal/application/auth"
	"github.com/asmendustri/asm-endustri-api/internal/application/dto"
	"github.com/asmendustri/asm-endustri-api/internal/domain"
	"github.com/asmendustri/asm-endustri-api/internal/domain/entity"
	"github.com/asmendustri/asm-endustri-api/pkg/jwt"
)

const testSecret = "auth-usecase-test-secret"

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.byEmail[strings.ToLower(email)], nil
}

func (f *fakeUserRepo) GetIdentity(ctx context.Context, id int64) (*entity.User, error) {
	return f.GetByID(ctx, id)
}

func newUseCase(t *testing.T) (*auth.AuthUseCase, *entity.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &entity.User{
		ID:           1,
		Email:        "admin@asmendustri.com",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	repo := &fakeUserRepo{byEmail: map[string]*entity.User{admin.Email: admin}}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpHours: 1, Issuer: "asm-endustri-test"})
	return uc, admin
}

func TestLogin_Success(t *testing.T) {
	uc, admin := newUseCase(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@asmendustri.com",
		Password: "admin123",
	})
	require.NoError(t, err)

	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, admin.ID, resp.User.ID)
	assert.Equal(t, admin.Email, resp.User.Email)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
	require.NotNil(t, resp.User.CreatedAt)

	// The minted token must carry the user's identity, verifiable with the
	// same secret.
	claims, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.UserID)
	assert.Equal(t, admin.Email, claims.Email)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _ := newUseCase(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@asmendustri.com",
		Password: "not-the-password",
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, _ := newUseCase(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@asmendustri.com",
		Password: "admin123",
	})
	assert.Nil(t, resp)
	// Same error as a wrong password: no account enumeration.
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestToUserResponse_DropsHash(t *testing.T) {
	u := &entity.User{ID: 7, Email: "a@b.com", PasswordHash: "secret-hash", Role: entity.RoleUser}
	resp := auth.ToUserResponse(u)
	assert.Equal(t, int64(7), resp.ID)
	assert.Nil(t, resp.CreatedAt, "zero CreatedAt is omitted, not sent as 0001-01-01")
}
