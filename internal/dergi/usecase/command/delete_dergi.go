package command

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/dergi/domain"
)

// DeleteDergiCommand represents the command to delete a magazine
type DeleteDergiCommand struct {
	ID uint
}

// DeleteDergiHandler handles magazine deletion
type DeleteDergiHandler struct {
	repo domain.DergiRepository
}

// NewDeleteDergiHandler creates a new delete magazine handler
func NewDeleteDergiHandler(repo domain.DergiRepository) *DeleteDergiHandler {
	return &DeleteDergiHandler{repo: repo}
}

// Handle executes the delete magazine command
func (h *DeleteDergiHandler) Handle(ctx context.Context, cmd DeleteDergiCommand) error {
	if cmd.ID == 0 {
		return apperror.ValidationFailed("id", "invalid dergi id")
	}
	return h.repo.Delete(ctx, cmd.ID)
}
