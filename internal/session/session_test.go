package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "token")
}

func TestLoginGuardaTokenConPrefijo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "admin", creds["username"])

		json.NewEncoder(w).Encode(map[string]string{"token": "abc123"})
	}))
	defer srv.Close()

	path := tokenPath(t)
	s := New(srv.URL, path, 5*time.Second)
	require.False(t, s.IsAuthenticated())

	ok, err := s.Login(context.Background(), "admin", "1234")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, s.IsAuthenticated())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", string(raw))
}

func TestLoginSinTokenEnRespuesta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"mensaje": "hola"})
	}))
	defer srv.Close()

	s := New(srv.URL, tokenPath(t), 5*time.Second)

	ok, err := s.Login(context.Background(), "admin", "1234")
	require.NoError(t, err)
	assert.False(t, ok, "a 2xx without a token field is a failed login")
	assert.False(t, s.IsAuthenticated(), "state unchanged")
}

func TestLoginRechazado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := New(srv.URL, tokenPath(t), 5*time.Second)

	ok, err := s.Login(context.Background(), "admin", "mal")
	assert.False(t, ok)
	assert.Error(t, err)
	assert.False(t, s.IsAuthenticated())
}

func TestLoginFalloDeRed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed on purpose

	s := New(srv.URL, tokenPath(t), 2*time.Second)

	ok, err := s.Login(context.Background(), "admin", "1234")
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestTransportAdjuntaAuthorization(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
	}))
	defer srv.Close()

	path := tokenPath(t)
	require.NoError(t, os.WriteFile(path, []byte("Bearer persistido"), 0o600))

	// initialization must pick the persisted token up
	s := New(srv.URL, path, 5*time.Second)
	require.True(t, s.IsAuthenticated())

	resp, err := s.Client().Get(srv.URL + "/productos")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer persistido", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestLogoutLimpiaEstadoYArchivo(t *testing.T) {
	path := tokenPath(t)
	require.NoError(t, os.WriteFile(path, []byte("Bearer x"), 0o600))

	s := New("http://localhost:0", path, time.Second)
	require.True(t, s.IsAuthenticated())

	require.NoError(t, s.Logout())
	assert.False(t, s.IsAuthenticated())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// idempotent
	assert.NoError(t, s.Logout())
}
