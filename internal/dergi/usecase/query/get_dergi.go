package query

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/dergi/domain"
)

// GetDergiQuery represents the query to get a magazine by ID
type GetDergiQuery struct {
	ID uint
}

// GetDergiHandler handles get magazine queries
type GetDergiHandler struct {
	repo domain.DergiRepository
}

// NewGetDergiHandler creates a new get magazine handler
func NewGetDergiHandler(repo domain.DergiRepository) *GetDergiHandler {
	return &GetDergiHandler{repo: repo}
}

// Handle executes the get magazine query
func (h *GetDergiHandler) Handle(ctx context.Context, q GetDergiQuery) (*domain.Dergi, error) {
	return h.repo.FindByID(ctx, q.ID)
}
