package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/golang-jwt/jwt/v5"
)

type staticKeyfunc struct {
	secret []byte
}

func (s staticKeyfunc) Keyfunc(_ *jwt.Token) (any, error) {
	return s.secret, nil
}

func (s staticKeyfunc) KeyfuncCtx(_ context.Context) jwt.Keyfunc {
	return s.Keyfunc
}

func (s staticKeyfunc) Storage() jwkset.Storage {
	return nil
}

func (s staticKeyfunc) VerificationKeySet(_ context.Context) (jwt.VerificationKeySet, error) {
	return jwt.VerificationKeySet{}, nil
}

func signToken(t *testing.T, claims jwt.MapClaims, secret []byte) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	return signed
}

func makeClaims(issuer string, audience any) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss": issuer,
		"sub": "user-1",
		"aud": audience,
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
}

func TestKeycloakAuthenticatorRejectsWrongAudience(t *testing.T) {
	authenticator := &keycloakAuthenticator{
		issuer:   "http://keycloak.local/realms/subnetter",
		audience: "subnetter-api",
		jwks:     staticKeyfunc{secret: []byte("test-secret")},
	}

	token := signToken(t, makeClaims("http://keycloak.local/realms/subnetter", []string{"other-api"}), []byte("test-secret"))
	_, err := authenticator.Authenticate(context.Background(), token)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestKeycloakAuthenticatorReturnsPrincipal(t *testing.T) {
	authenticator := &keycloakAuthenticator{
		issuer:   "http://keycloak.local/realms/subnetter",
		audience: "subnetter-api",
		jwks:     staticKeyfunc{secret: []byte("test-secret")},
	}

	token := signToken(t, makeClaims("http://keycloak.local/realms/subnetter", []string{"subnetter-api"}), []byte("test-secret"))
	principal, err := authenticator.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if principal.Issuer != "http://keycloak.local/realms/subnetter" {
		t.Fatalf("unexpected issuer: %v", principal.Issuer)
	}
	if principal.Subject != "user-1" {
		t.Fatalf("unexpected subject: %v", principal.Subject)
	}
}

func TestNewKeycloakAuthenticatorFailsWhenJWKSUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/certs" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("no jwks"))
	}))
	defer server.Close()

	_, err := NewKeycloakAuthenticator(context.Background(), Config{
		Enabled:  true,
		Issuer:   "http://keycloak.local/realms/subnetter",
		JWKSURL:  server.URL + "/certs",
		Audience: "subnetter-api",
	})
	if err == nil {
		t.Fatal("expected error when jwks endpoint is unavailable")
	}
	if !strings.Contains(err.Error(), "jwks endpoint returned 502") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewKeycloakAuthenticatorDisabledReturnsNil(t *testing.T) {
	authenticator, err := NewKeycloakAuthenticator(context.Background(), Config{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if authenticator != nil {
		t.Fatal("expected nil authenticator when auth is disabled")
	}
}

func TestNewKeycloakAuthenticatorRequiresIssuer(t *testing.T) {
	_, err := NewKeycloakAuthenticator(context.Background(), Config{Enabled: true})
	if err == nil {
		t.Fatal("expected error when issuer is empty")
	}
}

func TestKeycloakAuthenticatorRejectsExpiredToken(t *testing.T) {
	authenticator := &keycloakAuthenticator{
		issuer: "http://keycloak.local/realms/subnetter",
		jwks:   staticKeyfunc{secret: []byte("test-secret")},
	}

	claims := makeClaims("http://keycloak.local/realms/subnetter", "subnetter-api")
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	token := signToken(t, claims, []byte("test-secret"))

	if _, err := authenticator.Authenticate(context.Background(), token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
