package query

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/dergi/domain"
)

// ListDergisQuery represents the query to list magazines
type ListDergisQuery struct {
	Search string
	Page   int
	Limit  int
}

// ListDergisResult carries one page of magazines plus the total match count
type ListDergisResult struct {
	Dergis []domain.Dergi
	Total  int64
	Page   int
	Limit  int
}

// ListDergisHandler handles list magazine queries
type ListDergisHandler struct {
	repo domain.DergiRepository
}

// NewListDergisHandler creates a new list magazines handler
func NewListDergisHandler(repo domain.DergiRepository) *ListDergisHandler {
	return &ListDergisHandler{repo: repo}
}

// Handle executes the list magazines query
func (h *ListDergisHandler) Handle(ctx context.Context, q ListDergisQuery) (*ListDergisResult, error) {
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

	dergis, err := h.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := h.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ListDergisResult{Dergis: dergis, Total: total, Page: q.Page, Limit: q.Limit}, nil
}
