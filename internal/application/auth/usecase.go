package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/asmendustri/asm-endustri-api/internal/application/dto"
	"github.com/asmendustri/asm-endustri-api/internal/domain"
	"github.com/asmendustri/asm-endustri-api/internal/domain/entity"
	"github.com/asmendustri/asm-endustri-api/internal/domain/repository"
	"github.com/asmendustri/asm-endustri-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase authentication flows: login and token verification.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifies email/password and mints a JWT. The same ErrUnauthorized
// comes back for an unknown email and a wrong password, so the response
// does not reveal which accounts exist.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    ToUserResponse(user),
	}, nil
}

// ToUserResponse maps a domain user to its client shape, dropping the hash.
func ToUserResponse(u *entity.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
	if !u.CreatedAt.IsZero() {
		t := u.CreatedAt
		resp.CreatedAt = &t
	}
	return resp
}
