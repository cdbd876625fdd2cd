package session

import (
	"net/http"

	"github.com/google/uuid"
)

// authTransport attaches the persisted Authorization value and a correlation
// id to every outgoing request. The token value is read per request so a
// login or logout takes effect immediately on in-flight clients.
type authTransport struct {
	session *Session
	base    http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone per RoundTripper contract: the original request must not mutate.
	clone := req.Clone(req.Context())
	if token := t.session.currentToken(); token != "" {
		clone.Header.Set("Authorization", token)
	}
	clone.Header.Set("X-Request-ID", uuid.NewString())
	return t.base.RoundTrip(clone)
}
