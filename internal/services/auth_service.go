package services

import (
	"context"
	"strings"

	"github.com/accessihire/backend/internal/auth"
	"github.com/accessihire/backend/internal/models"
	"github.com/accessihire/backend/internal/repository"
	appErr "github.com/accessihire/backend/pkg/errors"
	"github.com/accessihire/backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput carries the registration fields. Name, Email and Password
// are required; the rest default.
type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	DisabilityType string
	Phone          string
	Role           string
}

type AuthService interface {
	Register(ctx context.Context, input *RegisterInput) (string, *models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{users: users, tokens: tokens}
}

var _ AuthService = (*authService)(nil)

// Register creates an account and returns a signed token alongside it.
// Emails are stored lowercased so the uniqueness check is case-insensitive.
func (s *authService) Register(ctx context.Context, input *RegisterInput) (string, *models.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return "", nil, appErr.New(appErr.CodeInvalid, "Name, email, and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if exists {
		return "", nil, appErr.New(appErr.CodeConflict, "User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
	}

	role := input.Role
	if role == "" {
		role = models.RoleJobSeeker
	}
	disability := input.DisabilityType
	if disability == "" {
		disability = models.DefaultDisabilityType
	}

	u := &models.User{
		Name:           input.Name,
		Email:          email,
		Password:       string(hash),
		DisabilityType: disability,
		Phone:          input.Phone,
		Role:           role,
		IsActive:       true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", nil, appErr.Wrap(err, appErr.CodeInternal, "sign token failed")
	}

	logger.L().Info("user registered", zap.String("user_id", u.ID.String()))
	return token, u, nil
}

// Login verifies credentials and returns a fresh token. Unknown email and
// wrong password produce the same failure so callers cannot enumerate users.
func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, appErr.New(appErr.CodeInvalid, "Email and password are required")
	}

	var u models.User
	if err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)), &u); err != nil {
		return "", nil, appErr.New(appErr.CodeInvalid, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, appErr.New(appErr.CodeInvalid, "Invalid credentials")
	}
	if !u.IsActive {
		return "", nil, appErr.New(appErr.CodeForbidden, "Account is inactive. Please contact support.")
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", nil, appErr.Wrap(err, appErr.CodeInternal, "sign token failed")
	}

	logger.L().Info("user logged in", zap.String("user_id", u.ID.String()))
	return token, &u, nil
}

// CurrentUser loads the record behind a verified token subject. The password
// hash is excluded by serialization, not stripped here.
func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var u models.User
	if err := s.users.GetByID(ctx, userID, &u); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeNotFound, "User not found")
		}
		return nil, err
	}
	return &u, nil
}
