package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenMissing is returned when the request carries no bearer token.
	ErrTokenMissing = errors.New("authorization token missing")
	// ErrTokenInvalid is returned for tampered, expired or malformed tokens.
	ErrTokenInvalid = errors.New("invalid or expired token")
)

// DefaultExpiration is the token lifetime used when no WithExpiration option is given.
const DefaultExpiration = time.Hour

// Claims are the session claims carried by every issued token.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	secretKey []byte        // Secret key for signing tokens
	exp       time.Duration // Token expiration duration
	now       func() time.Time
}

// Option configures a JWT instance.
type Option func(*JWT)

// WithSecretKey sets the HMAC signing secret.
func WithSecretKey(secret string) Option {
	return func(j *JWT) {
		j.secretKey = []byte(secret)
	}
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) {
		j.exp = exp
	}
}

// New creates a new JWT instance
func New(opts ...Option) *JWT {
	j := &JWT{
		exp: DefaultExpiration,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token for the given user.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	now := j.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// GetClaims verifies the token signature and expiry and returns its claims.
// Every verification failure is reported as ErrTokenInvalid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrTokenMissing
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrTokenMissing
	}

	return parts[1], nil
}
