package query

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/sayi/domain"
)

// GetSayiQuery represents the query to get an issue by ID
type GetSayiQuery struct {
	ID uint
}

// GetSayiHandler handles get issue queries
type GetSayiHandler struct {
	repo domain.SayiRepository
}

// NewGetSayiHandler creates a new get issue handler
func NewGetSayiHandler(repo domain.SayiRepository) *GetSayiHandler {
	return &GetSayiHandler{repo: repo}
}

// Handle executes the get issue query
func (h *GetSayiHandler) Handle(ctx context.Context, q GetSayiQuery) (*domain.Sayi, error) {
	return h.repo.FindByID(ctx, q.ID)
}
