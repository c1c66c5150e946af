package middleware

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules/common/httpx"
	platformservice "pawcare-admin/internal/platform/service"
)

// stubAuthorizer accepts exactly one token.
type stubAuthorizer struct {
	token string
	user  *model.User
	err   error
}

func (s *stubAuthorizer) AuthorizeToken(_ context.Context, token string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if token != s.token {
		return nil, platformservice.NewUnauthorizedError("Invalid token")
	}
	return s.user, nil
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) httpx.Envelope {
	t.Helper()
	var env httpx.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return env
}
