package command

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/yazar/domain"
)

// CreateYazarCommand represents the command to create an author
type CreateYazarCommand struct {
	Isim      string
	Biyografi *string
	Dogum     *string
	Olum      *string
	Parent    *string
	Childs    *string
	Image     *string
}

// CreateYazarHandler handles author creation
type CreateYazarHandler struct {
	repo domain.YazarRepository
}

// NewCreateYazarHandler creates a new create author handler
func NewCreateYazarHandler(repo domain.YazarRepository) *CreateYazarHandler {
	return &CreateYazarHandler{repo: repo}
}

// Handle executes the create author command
func (h *CreateYazarHandler) Handle(ctx context.Context, cmd CreateYazarCommand) (*domain.Yazar, error) {
	if cmd.Isim == "" {
		return nil, apperror.ValidationFailed("isim", "isim is required")
	}

	yazar := &domain.Yazar{
		Isim:      cmd.Isim,
		Biyografi: cmd.Biyografi,
		Dogum:     cmd.Dogum,
		Olum:      cmd.Olum,
		Parent:    cmd.Parent,
		Childs:    cmd.Childs,
		Image:     normalizedImage(cmd.Image),
	}

	if err := h.repo.Create(ctx, yazar); err != nil {
		return nil, err
	}
	return yazar, nil
}

func normalizedImage(image *string) *string {
	if image == nil {
		return nil
	}
	normalized := domain.NormalizeImagePath(*image)
	return &normalized
}
