package command

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/sayi/domain"
)

// DeleteSayiCommand represents the command to delete an issue
type DeleteSayiCommand struct {
	ID uint
}

// DeleteSayiHandler handles issue deletion
type DeleteSayiHandler struct {
	repo domain.SayiRepository
}

// NewDeleteSayiHandler creates a new delete issue handler
func NewDeleteSayiHandler(repo domain.SayiRepository) *DeleteSayiHandler {
	return &DeleteSayiHandler{repo: repo}
}

// Handle executes the delete issue command
func (h *DeleteSayiHandler) Handle(ctx context.Context, cmd DeleteSayiCommand) error {
	if cmd.ID == 0 {
		return apperror.ValidationFailed("id", "invalid sayi id")
	}
	return h.repo.Delete(ctx, cmd.ID)
}
