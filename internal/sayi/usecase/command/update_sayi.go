package command

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/sayi/domain"
)

// UpdateSayiCommand represents the command to replace an issue's fields
type UpdateSayiCommand struct {
	ID          uint
	DergiID     uint
	SayiNum     string
	Ay          *string
	Yil         *int
	Image       *string
	Pdf         *string
	ToplamSayfa *int
	ToplamYazi  *int
}

// UpdateSayiHandler handles issue updates
type UpdateSayiHandler struct {
	repo domain.SayiRepository
}

// NewUpdateSayiHandler creates a new update issue handler
func NewUpdateSayiHandler(repo domain.SayiRepository) *UpdateSayiHandler {
	return &UpdateSayiHandler{repo: repo}
}

// Handle executes the update issue command
func (h *UpdateSayiHandler) Handle(ctx context.Context, cmd UpdateSayiCommand) (*domain.Sayi, error) {
	if cmd.ID == 0 {
		return nil, apperror.ValidationFailed("id", "invalid sayi id")
	}
	if cmd.DergiID == 0 {
		return nil, apperror.ValidationFailed("dergi_id", "dergi_id is required")
	}
	if cmd.SayiNum == "" {
		return nil, apperror.ValidationFailed("sayi_num", "sayi_num is required")
	}

	sayi, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	sayi.DergiID = cmd.DergiID
	sayi.SayiNum = cmd.SayiNum
	sayi.Ay = cmd.Ay
	sayi.Yil = cmd.Yil
	sayi.Image = normalizedPath(cmd.Image)
	sayi.Pdf = normalizedPath(cmd.Pdf)
	sayi.ToplamSayfa = cmd.ToplamSayfa
	sayi.ToplamYazi = cmd.ToplamYazi

	if err := h.repo.Update(ctx, sayi); err != nil {
		return nil, err
	}
	return sayi, nil
}
