package query

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/yazi/domain"
)

// GetYaziQuery represents the query to get an article by ID
type GetYaziQuery struct {
	ID uint
}

// GetYaziHandler handles get article queries
type GetYaziHandler struct {
	repo domain.YaziRepository
}

// NewGetYaziHandler creates a new get article handler
func NewGetYaziHandler(repo domain.YaziRepository) *GetYaziHandler {
	return &GetYaziHandler{repo: repo}
}

// Handle executes the get article query
func (h *GetYaziHandler) Handle(ctx context.Context, q GetYaziQuery) (*domain.Yazi, error) {
	return h.repo.FindByID(ctx, q.ID)
}
