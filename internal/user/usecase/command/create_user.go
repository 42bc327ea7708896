package command

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/user/domain"
)

// CreateUserCommand represents the command to create a user
type CreateUserCommand struct {
	Name      string
	Email     string
	Password  string
	Level     int
	IsCan     int
	Tel       *string
	Adres     *string
	Meslek    *string
	Kurum     *string
	Kullanim  *string
	Biyografi *string
}

// CreateUserHandler handles user creation
type CreateUserHandler struct {
	repo domain.UserRepository
}

// NewCreateUserHandler creates a new create user handler
func NewCreateUserHandler(repo domain.UserRepository) *CreateUserHandler {
	return &CreateUserHandler{repo: repo}
}

// Handle executes the create user command
func (h *CreateUserHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*domain.User, error) {
	if cmd.Name == "" {
		return nil, apperror.ValidationFailed("name", "name is required")
	}
	if cmd.Email == "" {
		return nil, apperror.ValidationFailed("email", "email is required")
	}

	user := &domain.User{
		Name:      cmd.Name,
		Email:     cmd.Email,
		Level:     cmd.Level,
		IsCan:     cmd.IsCan,
		LDergi:    "[]",
		LSayi:     "[]",
		LYazar:    "[]",
		Tel:       cmd.Tel,
		Adres:     cmd.Adres,
		Meslek:    cmd.Meslek,
		Kurum:     cmd.Kurum,
		Kullanim:  cmd.Kullanim,
		Biyografi: cmd.Biyografi,
	}

	if cmd.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if err := h.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
