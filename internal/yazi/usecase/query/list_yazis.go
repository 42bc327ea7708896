package query

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/yazi/domain"
)

// ListYazisQuery represents the query to list articles
type ListYazisQuery struct {
	Search  string
	YazarID *uint
	SayiID  *uint
	DergiID *uint
	Sort    string
	Page    int
	Limit   int
}

// ListYazisResult carries one page of articles plus the total match count
type ListYazisResult struct {
	Yazis []domain.YaziWithMeta
	Total int64
	Page  int
	Limit int
}

// ListYazisHandler handles list article queries
type ListYazisHandler struct {
	repo domain.YaziRepository
}

// NewListYazisHandler creates a new list articles handler
func NewListYazisHandler(repo domain.YaziRepository) *ListYazisHandler {
	return &ListYazisHandler{repo: repo}
}

// Handle executes the list articles query
func (h *ListYazisHandler) Handle(ctx context.Context, q ListYazisQuery) (*ListYazisResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}
	if q.Limit > 200 {
		q.Limit = 200
	}
	switch q.Sort {
	case domain.SortPageAsc, domain.SortPageDesc:
	default:
		q.Sort = domain.SortRecent
	}

	filter := domain.ListFilter{
		Search:  q.Search,
		YazarID: q.YazarID,
		SayiID:  q.SayiID,
		DergiID: q.DergiID,
		Sort:    q.Sort,
		Limit:   q.Limit,
		Offset:  (q.Page - 1) * q.Limit,
	}

	yazis, err := h.repo.FindAllWithMeta(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := h.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ListYazisResult{Yazis: yazis, Total: total, Page: q.Page, Limit: q.Limit}, nil
}
