package command

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/yazar/domain"
)

// PatchYazarCommand carries a partial author update. Nil fields keep
// their stored values.
type PatchYazarCommand struct {
	ID        uint
	Isim      *string
	Biyografi *string
	Dogum     *string
	Olum      *string
	Parent    *string
	Childs    *string
	Image     *string
}

// PatchYazarHandler handles partial author updates
type PatchYazarHandler struct {
	repo domain.YazarRepository
}

// NewPatchYazarHandler creates a new patch author handler
func NewPatchYazarHandler(repo domain.YazarRepository) *PatchYazarHandler {
	return &PatchYazarHandler{repo: repo}
}

// Handle executes the patch author command
func (h *PatchYazarHandler) Handle(ctx context.Context, cmd PatchYazarCommand) (*domain.Yazar, error) {
	if cmd.ID == 0 {
		return nil, apperror.ValidationFailed("id", "invalid yazar id")
	}
	if cmd.Isim != nil && *cmd.Isim == "" {
		return nil, apperror.ValidationFailed("isim", "isim cannot be empty")
	}

	yazar, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Isim != nil {
		yazar.Isim = *cmd.Isim
	}
	if cmd.Biyografi != nil {
		yazar.Biyografi = cmd.Biyografi
	}
	if cmd.Dogum != nil {
		yazar.Dogum = cmd.Dogum
	}
	if cmd.Olum != nil {
		yazar.Olum = cmd.Olum
	}
	if cmd.Parent != nil {
		yazar.Parent = cmd.Parent
	}
	if cmd.Childs != nil {
		yazar.Childs = cmd.Childs
	}
	if cmd.Image != nil {
		yazar.Image = normalizedImage(cmd.Image)
	}

	if err := h.repo.Update(ctx, yazar); err != nil {
		return nil, err
	}
	return yazar, nil
}
