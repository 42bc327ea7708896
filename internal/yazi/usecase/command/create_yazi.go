package command

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/yazi/domain"
)

// CreateYaziCommand represents the command to create an article
type CreateYaziCommand struct {
	SayiID   uint
	YazarID  uint
	Baslik   string
	SayfaNum *int
}

// CreateYaziHandler handles article creation
type CreateYaziHandler struct {
	repo domain.YaziRepository
}

// NewCreateYaziHandler creates a new create article handler
func NewCreateYaziHandler(repo domain.YaziRepository) *CreateYaziHandler {
	return &CreateYaziHandler{repo: repo}
}

// Handle executes the create article command
func (h *CreateYaziHandler) Handle(ctx context.Context, cmd CreateYaziCommand) (*domain.Yazi, error) {
	if cmd.SayiID == 0 {
		return nil, apperror.ValidationFailed("sayi_id", "sayi_id is required")
	}
	if cmd.YazarID == 0 {
		return nil, apperror.ValidationFailed("yazar_id", "yazar_id is required")
	}
	if cmd.Baslik == "" {
		return nil, apperror.ValidationFailed("baslik", "baslik is required")
	}

	yazi := &domain.Yazi{
		SayiID:   cmd.SayiID,
		YazarID:  cmd.YazarID,
		Baslik:   cmd.Baslik,
		SayfaNum: cmd.SayfaNum,
	}

	if err := h.repo.Create(ctx, yazi); err != nil {
		return nil, err
	}
	return yazi, nil
}
