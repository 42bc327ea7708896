package command

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/dergi/domain"
)

// CreateDergiCommand represents the command to create a magazine
type CreateDergiCommand struct {
	Isim       string
	AltBaslik  *string
	Slogan     *string
	Aciklama   *string
	Imtiyaz    *string
	YaziMudur  *string
	Cikis      *string
	Bitis      *string
	BasimYeri  *string
	ToplamSayi *string
	Eksikler   *string
	Telif      *string
}

// CreateDergiHandler handles magazine creation
type CreateDergiHandler struct {
	repo domain.DergiRepository
}

// NewCreateDergiHandler creates a new create magazine handler
func NewCreateDergiHandler(repo domain.DergiRepository) *CreateDergiHandler {
	return &CreateDergiHandler{repo: repo}
}

// Handle executes the create magazine command
func (h *CreateDergiHandler) Handle(ctx context.Context, cmd CreateDergiCommand) (*domain.Dergi, error) {
	if cmd.Isim == "" {
		return nil, apperror.ValidationFailed("isim", "isim is required")
	}

	dergi := &domain.Dergi{
		Isim:       cmd.Isim,
		AltBaslik:  cmd.AltBaslik,
		Slogan:     cmd.Slogan,
		Aciklama:   cmd.Aciklama,
		Imtiyaz:    cmd.Imtiyaz,
		YaziMudur:  cmd.YaziMudur,
		Cikis:      cmd.Cikis,
		Bitis:      cmd.Bitis,
		BasimYeri:  cmd.BasimYeri,
		ToplamSayi: cmd.ToplamSayi,
		Eksikler:   cmd.Eksikler,
		Telif:      cmd.Telif,
	}

	if err := h.repo.Create(ctx, dergi); err != nil {
		return nil, err
	}
	return dergi, nil
}
