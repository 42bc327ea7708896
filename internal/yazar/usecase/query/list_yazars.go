package query

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/yazar/domain"
)

// ListYazarsQuery represents the query to list authors
type ListYazarsQuery struct {
	Search string
	Page   int
	Limit  int
}

// ListYazarsResult carries one page of authors plus the total match count
type ListYazarsResult struct {
	Yazars []domain.Yazar
	Total  int64
	Page   int
	Limit  int
}

// ListYazarsHandler handles list author queries
type ListYazarsHandler struct {
	repo domain.YazarRepository
}

// NewListYazarsHandler creates a new list authors handler
func NewListYazarsHandler(repo domain.YazarRepository) *ListYazarsHandler {
	return &ListYazarsHandler{repo: repo}
}

// Handle executes the list authors query
func (h *ListYazarsHandler) Handle(ctx context.Context, q ListYazarsQuery) (*ListYazarsResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}
	if q.Limit > 200 {
		q.Limit = 200
	}

	filter := domain.ListFilter{
		Search: q.Search,
		Limit:  q.Limit,
		Offset: (q.Page - 1) * q.Limit,
	}

	yazars, err := h.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := h.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ListYazarsResult{Yazars: yazars, Total: total, Page: q.Page, Limit: q.Limit}, nil
}
