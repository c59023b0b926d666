package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virelli/ArenaForge_Go/internal/account"
	"github.com/virelli/ArenaForge_Go/internal/concurrency"
)

func newTestServer() *Server {
	repo := account.NewFakeRepository()
	svc := account.NewService(repo, repo, concurrency.NewLockManager())
	return NewServer(0, nil, svc)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestServerRoutes(t *testing.T) {
	srv := newTestServer()
	router := srv.Router()

	// Health probe works without a database pool check on /healthz
	w := doJSON(t, router, "GET", "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Shop catalog is static and requires no player
	w = doJSON(t, router, "GET", "/api/v1/shop/items", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Iron Sword")

	// Full player flow through the real service
	w = doJSON(t, router, "POST", "/api/v1/player/init", map[string]string{
		"player_id": "tg-42",
		"username":  "arena_fan",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"newPlayer":true`)

	w = doJSON(t, router, "GET", "/api/v1/player/tg-42", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"gold":1000`)

	w = doJSON(t, router, "POST", "/api/v1/battle/start", map[string]interface{}{
		"player_id":    "tg-42",
		"gladiator_id": 1,
		"difficulty":   "easy",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"victory"`)

	w = doJSON(t, router, "GET", "/api/v1/player/tg-42/battles", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/leaderboard?type=gold", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tg-42")
}

func TestServerUnknownPlayerIs404(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv.Router(), "GET", "/api/v1/player/tg-nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Player not found")
}

func TestRequestSizeLimit(t *testing.T) {
	srv := newTestServer()

	huge := bytes.Repeat([]byte("a"), MaxRequestBodyBytes+1)
	req := httptest.NewRequest("POST", "/api/v1/player/init", bytes.NewReader(huge))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
