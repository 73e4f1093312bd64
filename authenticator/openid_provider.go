package authenticator

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// OpenIDVerifier implements the Verifier interface for OpenID Connect ID tokens
type OpenIDVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOpenIDVerifier discovers the issuer and builds a verifier for its tokens
func NewOpenIDVerifier(ctx context.Context, cfg Config) (*OpenIDVerifier, error) {
	// Validate required configuration
	if cfg.IssuerURL == "" {
		return nil, errors.New("issuer URL is required")
	}
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider %s: %w", cfg.IssuerURL, err)
	}

	return NewVerifier(provider.Verifier(&oidc.Config{ClientID: cfg.ClientID})), nil
}

// NewVerifier wraps an already configured ID token verifier
func NewVerifier(verifier *oidc.IDTokenVerifier) *OpenIDVerifier {
	return &OpenIDVerifier{verifier: verifier}
}

// VerifyToken verifies the signature, issuer, audience and expiry of rawToken
// and extracts its claims
func (v *OpenIDVerifier) VerifyToken(ctx context.Context, rawToken string) (*Claims, error) {
	if rawToken == "" {
		return nil, ErrInvalidToken
	}

	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	var claims Claims
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%w: failed to decode claims: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		claims.Subject = idToken.Subject
	}

	return &claims, nil
}
