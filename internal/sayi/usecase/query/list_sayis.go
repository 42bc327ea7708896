package query

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/sayi/domain"
)

// ListSayisQuery represents the query to list issues
type ListSayisQuery struct {
	Search  string
	DergiID *uint
	Yil     *int
	Page    int
	Limit   int
}

// ListSayisResult carries one page of issues plus the total match count
type ListSayisResult struct {
	Sayis []domain.Sayi
	Total int64
	Page  int
	Limit int
}

// ListSayisHandler handles list issue queries
type ListSayisHandler struct {
	repo domain.SayiRepository
}

// NewListSayisHandler creates a new list issues handler
func NewListSayisHandler(repo domain.SayiRepository) *ListSayisHandler {
	return &ListSayisHandler{repo: repo}
}

// Handle executes the list issues query
func (h *ListSayisHandler) Handle(ctx context.Context, q ListSayisQuery) (*ListSayisResult, error) {
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
		Search:  q.Search,
		DergiID: q.DergiID,
		Yil:     q.Yil,
		Limit:   q.Limit,
		Offset:  (q.Page - 1) * q.Limit,
	}

	sayis, err := h.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := h.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ListSayisResult{Sayis: sayis, Total: total, Page: q.Page, Limit: q.Limit}, nil
}
