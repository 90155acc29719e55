package handlers

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"symptomcheck/internal/config"
	"symptomcheck/internal/middleware"
	"symptomcheck/internal/observability"
)

const (
	sessionStateKey  = "oauth_state"
	sessionReturnKey = "oauth_return_to"

	// defaultReturnPath is where a completed login lands when the client
	// did not ask for a specific page.
	defaultReturnPath = "/symptoms/history"

	exchangeTimeout = 10 * time.Second
)

// AuthHandler runs the OIDC authorization-code flow that assigns each
// browser session a history owner.
type AuthHandler struct {
	oauth    oauth2.Config
	verifier *oidc.IDTokenVerifier
	logger   zerolog.Logger
}

// NewAuthHandler discovers the issuer and builds the OAuth2 client.
func NewAuthHandler(ctx context.Context, cfg *config.Config) (*AuthHandler, error) {
	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		return nil, err
	}

	return &AuthHandler{
		oauth: oauth2.Config{
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			RedirectURL:  cfg.OIDCRedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID},
		},
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.OIDCClientID}),
		logger:   observability.Component("auth"),
	}, nil
}

// Verifier returns a token verifier for bearer-authenticated API clients.
func (h *AuthHandler) Verifier() middleware.TokenVerifier {
	return middleware.OIDCVerifier{Verifier: h.verifier}
}

// Login starts the flow. An optional return_to query parameter names the
// local path to land on afterwards.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	state := generateState()
	sess.Set(sessionStateKey, state)
	sess.Set(sessionReturnKey, returnPath(c.Query("return_to")))

	return c.Redirect().To(h.oauth.AuthCodeURL(state))
}

// Callback completes the flow and stores the ID token subject in the session.
func (h *AuthHandler) Callback(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	want, _ := sess.Get(sessionStateKey).(string)
	if want == "" || want != c.Query("state") {
		return fiber.NewError(fiber.StatusBadRequest, "invalid state")
	}
	sess.Delete(sessionStateKey)

	if errParam := c.Query("error"); errParam != "" {
		return fiber.NewError(fiber.StatusUnauthorized, "login failed: "+errParam)
	}

	ctx, cancel := context.WithTimeout(c.Context(), exchangeTimeout)
	defer cancel()

	token, err := h.oauth.Exchange(ctx, c.Query("code"))
	if err != nil {
		h.logger.Warn().Err(err).Msg("code exchange failed")
		return fiber.NewError(fiber.StatusBadRequest, "failed to exchange code")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "missing id_token")
	}

	idToken, err := h.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id_token")
	}

	sess.Set(middleware.SessionSubjectKey, idToken.Subject)
	h.logger.Debug().Str("sub", idToken.Subject).Msg("login completed")

	target, _ := sess.Get(sessionReturnKey).(string)
	sess.Delete(sessionReturnKey)
	return c.Redirect().To(returnPath(target))
}

// Logout ends the session. The owner's history is kept.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if sess := session.FromContext(c); sess != nil {
		sess.Destroy()
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// returnPath only allows local absolute paths, so the login flow cannot be
// used as an open redirect.
func returnPath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, `\`) {
		return defaultReturnPath
	}
	return p
}

func generateState() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
