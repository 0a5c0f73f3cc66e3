// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/gearstore/internal/config"
)

func newTestJWTManager(t *testing.T) *JWTManager {
	t.Helper()

	dir := t.TempDir()
	privatePath := filepath.Join(dir, "private.pem")
	publicPath := filepath.Join(dir, "public.pem")

	require.NoError(t, GenerateKeyPair(privatePath, publicPath))

	manager, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath:    privatePath,
		PublicKeyPath:     publicPath,
		AccessTokenExpire: time.Hour,
		Issuer:            "gearstore",
		Audience:          "gearstore-api",
	})
	require.NoError(t, err)

	return manager
}

func TestCreateAndVerifyAccessToken(t *testing.T) {
	manager := newTestJWTManager(t)

	token, err := manager.CreateAccessToken("user-1", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := manager.VerifyAccessToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", identity.UserID)
	assert.Equal(t, "admin", identity.Role)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager := newTestJWTManager(t)

	_, err := manager.VerifyAccessToken(
		context.Background(),
		"not.a.token",
	)
	assert.Error(t, err)
}

func TestVerifyRejectsTokenFromOtherKey(t *testing.T) {
	manager := newTestJWTManager(t)
	other := newTestJWTManager(t)

	token, err := other.CreateAccessToken("user-1", "user")
	require.NoError(t, err)

	_, err = manager.VerifyAccessToken(context.Background(), token)
	assert.Error(t, err)
}

func TestJWKSHandler(t *testing.T) {
	manager := newTestJWTManager(t)

	req := httptest.NewRequest("GET", "/.well-known/jwks.json", nil)
	rec := httptest.NewRecorder()

	manager.GetJWKSHandler()(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, rec.Body.String(), `"keys"`)
}
