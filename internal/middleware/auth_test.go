// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/angelamos/gearstore/internal/core"
)

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", ""},
		{"bearer token", "Bearer abc123", "abc123"},
		{"case insensitive scheme", "bearer abc123", "abc123"},
		{"wrong scheme", "Basic abc123", ""},
		{"scheme only", "Bearer", ""},
		{"extra whitespace trimmed", "Bearer  abc123", "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, ExtractToken(r))
		})
	}
}

type staticVerifier struct {
	identity *Identity
	err      error
}

func (v *staticVerifier) VerifyAccessToken(
	_ context.Context,
	_ string,
) (*Identity, error) {
	return v.identity, v.err
}

func TestAuthenticatorMissingToken(t *testing.T) {
	handler := Authenticator(&staticVerifier{})(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("handler should not run")
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorExpiredToken(t *testing.T) {
	verifier := &staticVerifier{
		err: fmt.Errorf("verify: %w", core.ErrTokenExpired),
	}
	handler := Authenticator(verifier)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("handler should not run")
		}))

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_EXPIRED")
}

func TestAuthenticatorSetsIdentity(t *testing.T) {
	verifier := &staticVerifier{
		identity: &Identity{UserID: "user-1", Role: "admin"},
	}

	var gotID, gotRole string
	handler := Authenticator(verifier)(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			gotID = GetUserID(r.Context())
			gotRole = GetUserRole(r.Context())
		}))

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer ok")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	assert.Equal(t, "user-1", gotID)
	assert.Equal(t, "admin", gotRole)
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("admin passes", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDKey, "user-1")
		ctx = context.WithValue(ctx, UserRoleKey, "admin")

		r := httptest.NewRequest("GET", "/", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("user forbidden", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDKey, "user-1")
		ctx = context.WithValue(ctx, UserRoleKey, "user")

		r := httptest.NewRequest("GET", "/", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rec, r)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("anonymous unauthorized", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rec, r)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
