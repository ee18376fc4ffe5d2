package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/patorma/book-reviews/internal/jwt"
	"github.com/patorma/book-reviews/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &jwt.Claims{UserID: uuid.New(), Email: "a@b.com"}

	tests := []struct {
		name             string
		mockSetup        func(m *MockTokener)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", jwt.ErrTokenMissing)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "InvalidToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(nil, jwt.ErrTokenInvalid)
			},
			expectedStatus:   http.StatusForbidden,
			expectNextCalled: false,
		},
		{
			name: "UnexpectedVerifierError",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(nil, errors.New("boom"))
			},
			expectedStatus:   http.StatusForbidden,
			expectNextCalled: false,
		},
		{
			name: "ValidToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(claims, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			tt.mockSetup(mockTokener)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, claims, ClaimsFromContext(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)

			if !tt.expectNextCalled {
				var body models.MessageResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.NotEmpty(t, body.Message)
			}
		})
	}
}

func TestAuthMiddleware_RealIssuer(t *testing.T) {
	issuer := jwt.New(jwt.WithSecretKey("secret"))
	other := jwt.New(jwt.WithSecretKey("other"))

	userID := uuid.New()
	good, err := issuer.Generate(context.Background(), userID, "a@b.com")
	require.NoError(t, err)
	forged, err := other.Generate(context.Background(), userID, "a@b.com")
	require.NoError(t, err)

	handler := AuthMiddleware(issuer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := ClaimsFromContext(r.Context())
		require.NotNil(t, c)
		assert.Equal(t, userID, c.UserID)
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer " + good, http.StatusNoContent},
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"forged", "Bearer " + forged, http.StatusForbidden},
		{"garbage", "Bearer not.a.jwt", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestClaimsFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, ClaimsFromContext(req.Context()))

	c := &jwt.Claims{UserID: uuid.New()}
	assert.Equal(t, c, ClaimsFromContext(WithClaims(req.Context(), c)))
}
