package command

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/sayi/domain"
)

// CreateSayiCommand represents the command to create an issue
type CreateSayiCommand struct {
	DergiID     uint
	SayiNum     string
	Ay          *string
	Yil         *int
	Image       *string
	Pdf         *string
	ToplamSayfa *int
	ToplamYazi  *int
}

// CreateSayiHandler handles issue creation
type CreateSayiHandler struct {
	repo domain.SayiRepository
}

// NewCreateSayiHandler creates a new create issue handler
func NewCreateSayiHandler(repo domain.SayiRepository) *CreateSayiHandler {
	return &CreateSayiHandler{repo: repo}
}

// Handle executes the create issue command
func (h *CreateSayiHandler) Handle(ctx context.Context, cmd CreateSayiCommand) (*domain.Sayi, error) {
	if cmd.DergiID == 0 {
		return nil, apperror.ValidationFailed("dergi_id", "dergi_id is required")
	}
	if cmd.SayiNum == "" {
		return nil, apperror.ValidationFailed("sayi_num", "sayi_num is required")
	}

	sayi := &domain.Sayi{
		DergiID:     cmd.DergiID,
		SayiNum:     cmd.SayiNum,
		Ay:          cmd.Ay,
		Yil:         cmd.Yil,
		Image:       normalizedPath(cmd.Image),
		Pdf:         normalizedPath(cmd.Pdf),
		ToplamSayfa: cmd.ToplamSayfa,
		ToplamYazi:  cmd.ToplamYazi,
	}

	if err := h.repo.Create(ctx, sayi); err != nil {
		return nil, err
	}
	return sayi, nil
}

func normalizedPath(p *string) *string {
	if p == nil {
		return nil
	}
	normalized := domain.NormalizePath(*p)
	return &normalized
}
