package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tastehunt/backend/internal/domain/identity"
	"github.com/tastehunt/backend/internal/domain/shared"
	"github.com/tastehunt/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserDTO is the transport representation of a staff account.
type UserDTO struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toUserDTO(u *identity.User) *UserDTO {
	return &UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role.String(),
		CreatedAt:   u.CreatedAt,
	}
}

// LoginResult bundles the issued tokens with the authenticated account.
type LoginResult struct {
	Tokens *auth.TokenPair `json:"tokens"`
	User   *UserDTO        `json:"user"`
}

// AuthService handles login, logout and account management.
type AuthService struct {
	users     identity.Repository
	jwt       *auth.JWTService
	blacklist auth.TokenBlacklist
	logger    *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users identity.Repository, jwt *auth.JWTService, blacklist auth.TokenBlacklist, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		jwt:       jwt,
		blacklist: blacklist,
		logger:    logger,
	}
}

// Login verifies credentials and issues a token pair. Unknown accounts and
// wrong passwords produce the same error so callers cannot probe for emails.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}

	if !user.VerifyPassword(password) {
		s.logger.Warn("Login rejected", zap.String("email", email))
		return nil, shared.ErrUnauthorized
	}

	tokens, err := s.jwt.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role.String(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role.String()),
	)

	return &LoginResult{Tokens: tokens, User: toUserDTO(user)}, nil
}

// Logout revokes the presented access token for its remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}
	return s.blacklist.AddToBlacklist(ctx, claims.ID, ttl)
}

// Refresh exchanges a refresh token for a fresh token pair.
func (s *AuthService) Refresh(_ context.Context, refreshToken string) (*auth.TokenPair, error) {
	return s.jwt.RefreshTokenPair(refreshToken)
}

// Me returns the account behind an authenticated request.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return toUserDTO(user), nil
}

// RegisterInput contains input for creating a staff account.
type RegisterInput struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role" binding:"required"`
}

// Register creates a new staff account.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*UserDTO, error) {
	existing, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrAlreadyExists
	}

	user, err := identity.NewUser(input.Email, input.Password, input.DisplayName, identity.Role(input.Role))
	if err != nil {
		return nil, err
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role.String()),
	)

	return toUserDTO(user), nil
}
