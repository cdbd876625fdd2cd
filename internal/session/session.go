// Package session owns the authentication token: it persists it across runs,
// attaches it to every outgoing request and exposes the authenticated state.
// The token is opaque to the client: there is no refresh and no expiry
// handling; a stale token simply surfaces as a rejected request later.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/apierror"
	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/dto"
)

// Session holds the persisted bearer token and the transport configuration.
// Create one at app start, tear it down with Logout.
type Session struct {
	baseURL   string
	tokenPath string

	mu    sync.RWMutex
	token string // already prefixed: "Bearer <jwt>"

	httpClient *http.Client
}

// New initializes the session: it checks the token file and, when a token is
// present, marks the session authenticated and configures the transport to
// attach it to every subsequent request.
func New(baseURL, tokenPath string, timeout time.Duration) *Session {
	s := &Session{
		baseURL:   strings.TrimRight(baseURL, "/"),
		tokenPath: tokenPath,
	}
	s.httpClient = &http.Client{
		Timeout:   timeout,
		Transport: &authTransport{session: s, base: http.DefaultTransport},
	}

	raw, err := os.ReadFile(tokenPath)
	if err == nil {
		s.token = strings.TrimSpace(string(raw))
	} else if !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", tokenPath).Msg("no se pudo leer el token guardado")
	}
	return s
}

// IsAuthenticated reports whether a token is held.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Client returns the HTTP client with the Authorization transport attached.
// All API requests must go through it.
func (s *Session) Client() *http.Client { return s.httpClient }

// BaseURL returns the configured backend origin without a trailing slash.
func (s *Session) BaseURL() string { return s.baseURL }

// Login posts credentials to the fixed authentication endpoint. On a response
// containing a token it persists the bearer value and marks the session
// authenticated. Any other response or a network failure yields false with no
// state change; the returned error carries the classified cause.
func (s *Session) Login(ctx context.Context, username, password string) (bool, error) {
	body, err := json.Marshal(dto.LoginRequest{Username: username, Password: password})
	if err != nil {
		return false, apierror.NewLocal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return false, apierror.NewLocal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false, apierror.NewRed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, &apierror.Error{
			Tipo:    apierror.Rechazo,
			Estado:  resp.StatusCode,
			Detalle: "Credenciales invalidas",
		}
	}

	var login dto.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil || login.Token == "" {
		// A 2xx without a token field is still a failed login.
		return false, nil
	}

	if err := s.persist("Bearer " + login.Token); err != nil {
		return false, apierror.NewLocal(err)
	}

	log.Info().Str("username", username).Msg("sesion iniciada")
	return true, nil
}

// Logout clears the persisted token and the transport configuration.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if err := os.Remove(s.tokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: remove token: %w", err)
	}
	log.Info().Msg("sesion cerrada")
	return nil
}

func (s *Session) persist(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.tokenPath), 0o755); err != nil {
		return fmt.Errorf("session: create token dir: %w", err)
	}
	if err := os.WriteFile(s.tokenPath, []byte(token), 0o600); err != nil {
		return fmt.Errorf("session: write token: %w", err)
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *Session) currentToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
