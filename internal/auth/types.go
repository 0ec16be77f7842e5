package auth

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid token")

// Config selects bearer-token authentication for the partition API.
type Config struct {
	Enabled  bool
	Issuer   string
	Audience string
	// JWKSURL defaults to the Keycloak certs endpoint under Issuer.
	JWKSURL string
}

type Authenticator interface {
	Authenticate(ctx context.Context, bearerToken string) (Principal, error)
}

// Principal is the caller a verified token belongs to.
type Principal struct {
	Issuer   string
	Subject  string
	Audience any
	Claims   map[string]any
}

type principalContextKey struct{}

func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, principal)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(Principal)
	return principal, ok
}
