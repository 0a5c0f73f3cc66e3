// AngelaMos | 2026
// response_test.go

package core

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, map[string]string{"id": "kb-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Nil(t, env.Count)
	assert.Empty(t, env.Message)
}

func TestListOKSetsCount(t *testing.T) {
	rec := httptest.NewRecorder()
	ListOK(rec, []string{"a", "b", "c"}, 3)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 3, *env.Count)
}

func TestListOKZeroCountStillPresent(t *testing.T) {
	rec := httptest.NewRecorder()
	ListOK(rec, []string{}, 0)

	assert.Contains(t, rec.Body.String(), `"count":0`)
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "product")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "product not found", env.Message)
}

func TestJSONErrorWithAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, EmptyCartError())

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "cart is empty", env.Message)
	assert.Equal(t, "EMPTY_CART", env.Errors["code"])
}

func TestJSONErrorWithPlainError(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "internal server error", env.Message)
}
