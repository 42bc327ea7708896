package command

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/yazi/domain"
)

// DeleteYaziCommand represents the command to delete an article
type DeleteYaziCommand struct {
	ID uint
}

// DeleteYaziHandler handles article deletion
type DeleteYaziHandler struct {
	repo domain.YaziRepository
}

// NewDeleteYaziHandler creates a new delete article handler
func NewDeleteYaziHandler(repo domain.YaziRepository) *DeleteYaziHandler {
	return &DeleteYaziHandler{repo: repo}
}

// Handle executes the delete article command
func (h *DeleteYaziHandler) Handle(ctx context.Context, cmd DeleteYaziCommand) error {
	if cmd.ID == 0 {
		return apperror.ValidationFailed("id", "invalid yazi id")
	}
	return h.repo.Delete(ctx, cmd.ID)
}
