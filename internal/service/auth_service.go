package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bazar-dor-api/internal/model"
	"bazar-dor-api/internal/repository"
	"bazar-dor-api/pkg/jwt"
	"bazar-dor-api/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrSessionRevoked     = errors.New("session expired (signed out or logged in on another device)")
)

// IsAuthError reports whether err is a rejected sign-in or session.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrUserInactive) ||
		errors.Is(err, ErrSessionRevoked) || errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, jwt.ErrInvalidToken) || errors.Is(err, jwt.ErrMissingToken)
}

// MinPasswordLength matches the login form rule.
const MinPasswordLength = 6

type AuthService interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	// Session is the current-session observer used to gate the admin area.
	Session(ctx context.Context, token string) *SessionState
	Authenticate(ctx context.Context, token string) (*model.User, error)
	ResetPassword(ctx context.Context, email, newPassword string) error
	EnsureAdmin(ctx context.Context, email, password, fullName string) (bool, error)
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

// SessionState mirrors what a client needs to route to the admin area.
// Loading is always false: the server answers with a settled state.
type SessionState struct {
	Authenticated bool                `json:"authenticated"`
	Loading       bool                `json:"loading"`
	User          *model.UserResponse `json:"user,omitempty"`
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *jwt.Manager
}

func NewAuthService(userRepo repository.UserRepository, tokens *jwt.Manager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	// 1. Validate before touching the user store
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	// 2. Find user by email
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. Check if user is active
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	// 4. Verify password
	if !user.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	// 5. Single session: a new token version invalidates older tokens
	newTokenVersion := uuid.New().String()
	if err := s.userRepo.UpdateSession(ctx, user.ID, newTokenVersion); err != nil {
		return nil, errors.New("failed to update session")
	}

	// 6. Generate JWT token with TokenVersion
	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.FullName, newTokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

// Logout rotates the token version so the current token stops working.
func (s *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.userRepo.UpdateTokenVersion(ctx, userID, uuid.New().String())
}

func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	// 1. Validate JWT token
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	// 2. Find user by ID from token claims
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// 3. Check if user is still active
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	// 4. Check against DB for strict session (TokenVersion)
	if user.TokenVersion != claims.TokenVersion {
		return nil, ErrSessionRevoked
	}

	return user, nil
}

func (s *authService) Session(ctx context.Context, token string) *SessionState {
	if token == "" {
		return &SessionState{}
	}
	user, err := s.Authenticate(ctx, token)
	if err != nil {
		return &SessionState{}
	}
	resp := user.ToResponse()
	return &SessionState{Authenticated: true, User: &resp}
}

func (s *authService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return &ValidationError{Fields: []validator.FieldError{{Field: "password", Tag: "min", Param: "6"}}}
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return ErrUserNotFound
	}

	if err := user.SetPassword(newPassword); err != nil {
		return errors.New("failed to hash new password")
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, user.Password); err != nil {
		return err
	}

	// Existing tokens must not survive a password reset
	return s.userRepo.UpdateTokenVersion(ctx, user.ID, uuid.New().String())
}

// EnsureAdmin creates the admin account if no user has that email yet.
// It reports whether a user was created.
func (s *authService) EnsureAdmin(ctx context.Context, email, password, fullName string) (bool, error) {
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	admin := &model.User{
		Email:    email,
		FullName: fullName,
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword(password); err != nil {
		return false, err
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}
