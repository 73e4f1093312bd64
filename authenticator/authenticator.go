package authenticator

import (
	"context"
	"errors"
)

// ErrInvalidToken is returned for missing, malformed or unverifiable tokens.
var ErrInvalidToken = errors.New("invalid bearer token")

// Config holds the OpenID Connect settings used to verify bearer tokens
type Config struct {
	IssuerURL string
	ClientID  string
}

// Claims represents the user claims taken from a verified ID token
type Claims struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// User returns the identity recorded for the request: email, then name, then subject.
func (c *Claims) User() string {
	switch {
	case c.Email != "":
		return c.Email
	case c.Name != "":
		return c.Name
	default:
		return c.Subject
	}
}

// Verifier checks bearer tokens presented to the API
type Verifier interface {
	VerifyToken(ctx context.Context, rawToken string) (*Claims, error)
}
