package command

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/yazi/domain"
)

// UpdateYaziCommand represents the command to replace an article's fields
type UpdateYaziCommand struct {
	ID       uint
	SayiID   uint
	YazarID  uint
	Baslik   string
	SayfaNum *int
}

// UpdateYaziHandler handles article updates
type UpdateYaziHandler struct {
	repo domain.YaziRepository
}

// NewUpdateYaziHandler creates a new update article handler
func NewUpdateYaziHandler(repo domain.YaziRepository) *UpdateYaziHandler {
	return &UpdateYaziHandler{repo: repo}
}

// Handle executes the update article command
func (h *UpdateYaziHandler) Handle(ctx context.Context, cmd UpdateYaziCommand) (*domain.Yazi, error) {
	if cmd.ID == 0 {
		return nil, apperror.ValidationFailed("id", "invalid yazi id")
	}
	if cmd.SayiID == 0 {
		return nil, apperror.ValidationFailed("sayi_id", "sayi_id is required")
	}
	if cmd.YazarID == 0 {
		return nil, apperror.ValidationFailed("yazar_id", "yazar_id is required")
	}
	if cmd.Baslik == "" {
		return nil, apperror.ValidationFailed("baslik", "baslik is required")
	}

	yazi, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	yazi.SayiID = cmd.SayiID
	yazi.YazarID = cmd.YazarID
	yazi.Baslik = cmd.Baslik
	yazi.SayfaNum = cmd.SayfaNum

	if err := h.repo.Update(ctx, yazi); err != nil {
		return nil, err
	}
	return yazi, nil
}
