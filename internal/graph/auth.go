package graph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// defaultScope requests app-only access to everything the application
// registration has been granted on the Graph API.
const defaultScope = "https://graph.microsoft.com/.default"

// TokenURL returns the v2.0 token endpoint for a tenant.
func TokenURL(tenantID string) string {
	return "https://login.microsoftonline.com/" + tenantID + "/oauth2/v2.0/token"
}

// CredentialsSource acquires bearer tokens via the OAuth2 client-credentials
// grant. Every Acquire call performs a fresh grant — tokens are not cached
// and expiry is not tracked; callers acquire once per top-level operation
// and discard the token afterwards.
type CredentialsSource struct {
	cfg    clientcredentials.Config
	logger *slog.Logger
}

// NewCredentialsSource builds a token source for an application registration.
// tokenURL is typically TokenURL(tenantID).
func NewCredentialsSource(tokenURL, clientID, clientSecret string, logger *slog.Logger) *CredentialsSource {
	if logger == nil {
		logger = slog.Default()
	}

	return &CredentialsSource{
		cfg: clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			Scopes:       []string{defaultScope},
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		logger: logger,
	}
}

// Acquire performs a client-credentials grant and returns the access token.
// Rejected credentials and unreachable endpoints both surface as *AuthError
// carrying the provider's message; use errors.Is(err, ErrAuth) to check.
func (s *CredentialsSource) Acquire(ctx context.Context) (string, error) {
	tok, err := s.cfg.Token(ctx)
	if err != nil {
		s.logger.Warn("token acquisition failed", slog.String("error", err.Error()))

		return "", &AuthError{Message: providerMessage(err), Err: ErrAuth}
	}

	s.logger.Debug("token acquired",
		slog.Time("expiry", tok.Expiry),
	)

	return tok.AccessToken, nil
}

// providerMessage extracts the identity provider's error body when present,
// falling back to the transport error text.
func providerMessage(err error) string {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) && len(re.Body) > 0 {
		return fmt.Sprintf("HTTP %d: %s", re.Response.StatusCode, re.Body)
	}

	return err.Error()
}
