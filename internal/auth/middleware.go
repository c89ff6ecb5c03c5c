package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/devnetwork/devnetwork-service/pkg/util"
)

// TokenHeader is the request header carrying the access token.
const TokenHeader = "x-auth-token"

const userIDKey = "auth_user_id"

// Middleware gates private routes behind a valid access token. It performs
// no store reads: the token alone establishes identity for the request.
type Middleware struct {
	tokens *TokenManager
	logger *zap.Logger
}

// NewMiddleware constructs the auth gate.
func NewMiddleware(tokens *TokenManager, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, logger: logger}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token := c.Get(TokenHeader)
	if token == "" {
		return apperrors.NewUnauthenticated("No token, access denied")
	}

	claims, err := m.tokens.Parse(token)
	if err != nil {
		// expired vs tampered is logged but never exposed to the caller
		if errors.Is(err, ErrTokenExpired) {
			m.logger.Debug("rejected expired token", zap.String("path", c.Path()))
		} else {
			m.logger.Debug("rejected invalid token", zap.String("path", c.Path()))
		}
		return apperrors.NewInvalidToken()
	}

	c.Locals(userIDKey, claims.UserID)
	return c.Next()
}

// UserIDFromContext retrieves the authenticated user id set by the gate.
func UserIDFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(userIDKey)
	if val == nil {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}
