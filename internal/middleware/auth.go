package middleware

import (
	"context"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
)

// SessionSubjectKey is the session key holding the signed-in OIDC subject.
const SessionSubjectKey = "user_sub"

const ownerLocalsKey = "owner"

// TokenVerifier verifies a raw ID token and returns its subject.
type TokenVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (string, error)
}

// OIDCVerifier adapts an oidc.IDTokenVerifier to TokenVerifier.
type OIDCVerifier struct {
	Verifier *oidc.IDTokenVerifier
}

// Verify implements TokenVerifier.
func (v OIDCVerifier) Verify(ctx context.Context, rawIDToken string) (string, error) {
	token, err := v.Verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return "", err
	}
	return token.Subject, nil
}

// AuthMiddleware resolves which history a request belongs to.
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates a new auth middleware instance. A nil verifier
// disables authentication and every request shares one history.
func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireOwner identifies the caller from a bearer ID token or the session
// subject and stores it as the history owner. It responds 401 when
// authentication is enabled and neither is present.
func (m *AuthMiddleware) RequireOwner(c fiber.Ctx) error {
	if m.verifier == nil {
		c.Locals(ownerLocalsKey, "")
		return c.Next()
	}

	if raw, ok := bearerToken(c.Get(fiber.HeaderAuthorization)); ok {
		sub, err := m.verifier.Verify(c.Context(), raw)
		if err != nil {
			return unauthorized(c, "invalid token")
		}
		c.Locals(ownerLocalsKey, sub)
		return c.Next()
	}

	if sess := session.FromContext(c); sess != nil {
		if sub, ok := sess.Get(SessionSubjectKey).(string); ok && sub != "" {
			c.Locals(ownerLocalsKey, sub)
			return c.Next()
		}
	}

	return unauthorized(c, "authentication required")
}

// Owner returns the history owner resolved by RequireOwner.
func Owner(c fiber.Ctx) string {
	owner, _ := c.Locals(ownerLocalsKey).(string)
	return owner
}

func bearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func unauthorized(c fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}
