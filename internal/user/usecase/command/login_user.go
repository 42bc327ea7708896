package command

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/user/domain"
	"github.com/ttkcys/milliyetciler/pkg/auth"
)

// LoginUserCommand represents the command to authenticate a user
type LoginUserCommand struct {
	Email    string
	Password string
}

// LoginResponse carries the authenticated user and a session token
type LoginResponse struct {
	User  *domain.User
	Token string
}

// LoginUserHandler handles user login
type LoginUserHandler struct {
	repo       domain.UserRepository
	sessionTTL time.Duration
}

// NewLoginUserHandler creates a new login handler
func NewLoginUserHandler(repo domain.UserRepository, sessionTTL time.Duration) *LoginUserHandler {
	return &LoginUserHandler{repo: repo, sessionTTL: sessionTTL}
}

// Handle executes the login command
func (h *LoginUserHandler) Handle(ctx context.Context, cmd LoginUserCommand) (*LoginResponse, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, apperror.ValidationFailed("email", "email and password are required")
	}

	user, err := h.repo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		// Do not leak whether the account exists
		return nil, apperror.Unauthenticated("invalid email or password")
	}

	if !passwordMatches(user.Password, cmd.Password) {
		return nil, apperror.Unauthenticated("invalid email or password")
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Level, h.sessionTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{User: user, Token: token}, nil
}

// passwordMatches verifies the supplied password against the stored
// credential. Rows migrated from the legacy database may still hold a
// plain-text password, so a constant-time comparison is used as a
// fallback when the stored value is not a bcrypt hash.
func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
