package command

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/yazar/domain"
)

// UpdateYazarCommand represents the command to replace an author's fields
type UpdateYazarCommand struct {
	ID        uint
	Isim      string
	Biyografi *string
	Dogum     *string
	Olum      *string
	Parent    *string
	Childs    *string
	Image     *string
}

// UpdateYazarHandler handles full author updates
type UpdateYazarHandler struct {
	repo domain.YazarRepository
}

// NewUpdateYazarHandler creates a new update author handler
func NewUpdateYazarHandler(repo domain.YazarRepository) *UpdateYazarHandler {
	return &UpdateYazarHandler{repo: repo}
}

// Handle executes the update author command
func (h *UpdateYazarHandler) Handle(ctx context.Context, cmd UpdateYazarCommand) (*domain.Yazar, error) {
	if cmd.ID == 0 {
		return nil, apperror.ValidationFailed("id", "invalid yazar id")
	}
	if cmd.Isim == "" {
		return nil, apperror.ValidationFailed("isim", "isim is required")
	}

	yazar, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	yazar.Isim = cmd.Isim
	yazar.Biyografi = cmd.Biyografi
	yazar.Dogum = cmd.Dogum
	yazar.Olum = cmd.Olum
	yazar.Parent = cmd.Parent
	yazar.Childs = cmd.Childs
	yazar.Image = normalizedImage(cmd.Image)

	if err := h.repo.Update(ctx, yazar); err != nil {
		return nil, err
	}
	return yazar, nil
}
