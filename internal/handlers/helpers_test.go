package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-career-opportunities/internal/jwt"
	"github.com/sbilibin2017/gw-career-opportunities/internal/middlewares"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
	"github.com/stretchr/testify/require"
)

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	return httptest.NewRequest(method, target, &buf)
}

func withClaims(r *http.Request, userID uuid.UUID, role models.Role) *http.Request {
	return r.WithContext(middlewares.WithClaims(r.Context(), &jwt.Claims{UserID: userID, Role: role}))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}
