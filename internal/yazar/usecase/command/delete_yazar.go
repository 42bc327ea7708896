package command

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/yazar/domain"
)

// DeleteYazarCommand represents the command to delete an author
type DeleteYazarCommand struct {
	ID uint
}

// DeleteYazarHandler handles author deletion
type DeleteYazarHandler struct {
	repo domain.YazarRepository
}

// NewDeleteYazarHandler creates a new delete author handler
func NewDeleteYazarHandler(repo domain.YazarRepository) *DeleteYazarHandler {
	return &DeleteYazarHandler{repo: repo}
}

// Handle executes the delete author command
func (h *DeleteYazarHandler) Handle(ctx context.Context, cmd DeleteYazarCommand) error {
	if cmd.ID == 0 {
		return apperror.ValidationFailed("id", "invalid yazar id")
	}
	return h.repo.Delete(ctx, cmd.ID)
}
