package command

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/dergi/domain"
)

// UpdateDergiCommand represents the command to replace a magazine's fields
type UpdateDergiCommand struct {
	ID         uint
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

// UpdateDergiHandler handles magazine updates
type UpdateDergiHandler struct {
	repo domain.DergiRepository
}

// NewUpdateDergiHandler creates a new update magazine handler
func NewUpdateDergiHandler(repo domain.DergiRepository) *UpdateDergiHandler {
	return &UpdateDergiHandler{repo: repo}
}

// Handle executes the update magazine command
func (h *UpdateDergiHandler) Handle(ctx context.Context, cmd UpdateDergiCommand) (*domain.Dergi, error) {
	if cmd.ID == 0 {
		return nil, apperror.ValidationFailed("id", "invalid dergi id")
	}
	if cmd.Isim == "" {
		return nil, apperror.ValidationFailed("isim", "isim is required")
	}

	dergi, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	dergi.Isim = cmd.Isim
	dergi.AltBaslik = cmd.AltBaslik
	dergi.Slogan = cmd.Slogan
	dergi.Aciklama = cmd.Aciklama
	dergi.Imtiyaz = cmd.Imtiyaz
	dergi.YaziMudur = cmd.YaziMudur
	dergi.Cikis = cmd.Cikis
	dergi.Bitis = cmd.Bitis
	dergi.BasimYeri = cmd.BasimYeri
	dergi.ToplamSayi = cmd.ToplamSayi
	dergi.Eksikler = cmd.Eksikler
	dergi.Telif = cmd.Telif

	if err := h.repo.Update(ctx, dergi); err != nil {
		return nil, err
	}
	return dergi, nil
}
