package command

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/user/domain"
)

// UpdateUserCommand represents the command to update a user's profile.
// The favorite-list columns are deliberately absent: those are owned
// by the list module.
type UpdateUserCommand struct {
	ID        uint
	Name      string
	Email     string
	Password  string // empty means keep the current one
	Level     *int
	IsCan     *int
	Tel       *string
	Adres     *string
	Meslek    *string
	Kurum     *string
	Kullanim  *string
	Biyografi *string
}

// UpdateUserHandler handles user updates
type UpdateUserHandler struct {
	repo domain.UserRepository
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo}
}

// Handle executes the update user command
func (h *UpdateUserHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*domain.User, error) {
	if cmd.ID == 0 {
		return nil, apperror.ValidationFailed("id", "invalid user id")
	}
	if cmd.Name == "" {
		return nil, apperror.ValidationFailed("name", "name is required")
	}
	if cmd.Email == "" {
		return nil, apperror.ValidationFailed("email", "email is required")
	}

	user, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	user.Name = cmd.Name
	user.Email = cmd.Email
	if cmd.Level != nil {
		user.Level = *cmd.Level
	}
	if cmd.IsCan != nil {
		user.IsCan = *cmd.IsCan
	}
	user.Tel = cmd.Tel
	user.Adres = cmd.Adres
	user.Meslek = cmd.Meslek
	user.Kurum = cmd.Kurum
	user.Kullanim = cmd.Kullanim
	user.Biyografi = cmd.Biyografi

	if cmd.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if err := h.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
