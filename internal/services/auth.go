package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/patorma/book-reviews/internal/logger"
	"github.com/patorma/book-reviews/internal/models"
	"github.com/patorma/book-reviews/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email string, passwordHash string) (uuid.UUID, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register registers a new user.
func (svc *AuthService) Register(ctx context.Context, email, password string) error {
	log := logger.FromContext(ctx)
	email = NormalizeEmail(email)

	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		log.Warnw("user already exists", "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return err
	}

	userID, err := svc.writer.Save(ctx, email, string(hashedPassword))
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			log.Warnw("user already exists", "email", email)
			return ErrUserAlreadyExists
		}
		log.Errorw("failed to save user", "err", err)
		return err
	}

	log.Infow("user registered", "userID", userID, "email", email)
	return nil
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareWithDummyHash spends a bcrypt comparison when the user is unknown,
// so both login failures take about the same time.
func compareWithDummyHash(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// Login authenticates a user and returns a JWT token together with the user.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	log := logger.FromContext(ctx)
	email = NormalizeEmail(email)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		compareWithDummyHash(password)
		log.Warnw("invalid credentials", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warnw("invalid credentials", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}
