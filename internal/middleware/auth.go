package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lostfound-app/backend/internal/config"
	"github.com/lostfound-app/backend/internal/dto"
	"github.com/lostfound-app/backend/internal/models"
	"gorm.io/gorm"
)

const currentUserKey = "currentUser"

// Protected verifies the bearer token's signature and expiry. A missing or
// malformed credential and a failed verification produce distinct messages.
func Protected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			message := "Not authorized, token failed"
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				message = "Not authorized, no token"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: message,
			})
		},
	})
}

// LoadUser runs after Protected and resolves the token subject against the
// users table, so handlers see the current account rather than stale claims.
// A subject that no longer resolves is treated as a failed token.
func LoadUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := UserID(c)
		if err != nil {
			return unauthorized(c)
		}

		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			return unauthorized(c)
		}

		c.Locals(currentUserKey, &user)
		return c.Next()
	}
}

// UserID extracts the user UUID from JWT claims in context.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

// CurrentUser returns the account resolved by LoadUser, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Message: "Not authorized, token failed",
	})
}
