package http

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/asmendustri/asm-endustri-api/internal/application/dto"
	"github.com/asmendustri/asm-endustri-api/internal/domain/entity"
	"github.com/asmendustri/asm-endustri-api/pkg/jwt"
)

// Locals keys for the authenticated identity in Fiber.
const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
	LocalUserRole  = "user_role"
)

// identityStoreTimeout bounds the middleware's per-request user lookup so a
// slow database cannot hold requests open indefinitely.
const identityStoreTimeout = 2 * time.Second

// identityResolver is the minimal contract the middleware needs from the
// user store. *postgres.UserRepo implements it; the interface keeps tests
// free of a database.
type identityResolver interface {
	GetIdentity(ctx context.Context, id int64) (*entity.User, error)
}

// AuthMiddleware validates the Bearer token and re-resolves the user from
// the store on every request. The identity placed in c.Locals comes from
// the freshly fetched row, not from the token claims, so a role change
// takes effect immediately and a deleted user is rejected even while their
// token is still unexpired.
//
// Status codes: 401 for a missing token or a vanished user, 403 for an
// invalid or expired token (kept as-is for compatibility with the existing
// admin dashboard, which tells the two cases apart).
func AuthMiddleware(jwtSecret string, users identityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Access token required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Access token required"})
		}

		claims, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Invalid token"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), identityStoreTimeout)
		defer cancel()
		user, err := users.GetIdentity(ctx, claims.UserID)
		if err != nil {
			log.Error().Err(err).Int64("user_id", claims.UserID).Msg("auth middleware: identity lookup failed")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Server error"})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "User not found"})
		}

		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUserEmail, user.Email)
		c.Locals(LocalUserRole, user.Role)
		return c.Next()
	}
}

// RequireAdmin rejects non-admin identities. Must run after AuthMiddleware;
// an empty role means the chain is miswired and yields 401.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetUserRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Access token required"})
		}
		if role != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "Admin access required"})
		}
		return c.Next()
	}
}

// GetUserID returns the authenticated user ID (after AuthMiddleware).
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetUserEmail returns the authenticated user's email (after AuthMiddleware).
func GetUserEmail(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalUserEmail).(string)
	return v
}

// GetUserRole returns the authenticated user's current role (after AuthMiddleware).
func GetUserRole(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalUserRole).(string)
	return v
}
