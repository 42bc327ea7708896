package query

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/yazar/domain"
)

// GetYazarQuery represents the query to get an author by ID
type GetYazarQuery struct {
	ID uint
}

// GetYazarHandler handles get author queries
type GetYazarHandler struct {
	repo domain.YazarRepository
}

// NewGetYazarHandler creates a new get author handler
func NewGetYazarHandler(repo domain.YazarRepository) *GetYazarHandler {
	return &GetYazarHandler{repo: repo}
}

// Handle executes the get author query
func (h *GetYazarHandler) Handle(ctx context.Context, q GetYazarQuery) (*domain.Yazar, error) {
	return h.repo.FindByID(ctx, q.ID)
}
