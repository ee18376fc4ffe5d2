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
	"github.com/patorma/book-reviews/internal/jwt"
	"github.com/patorma/book-reviews/internal/middlewares"
	"github.com/patorma/book-reviews/internal/models"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

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
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withUser(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := middlewares.WithClaims(req.Context(), &jwt.Claims{UserID: userID, Email: "reader@example.com"})
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.MessageResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body.Message
}
