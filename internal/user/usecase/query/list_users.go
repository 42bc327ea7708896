package query

import (
	"context"

	"github.com/ttkcys/milliyetciler/internal/user/domain"
)

// ListUsersQuery represents the query to list users
type ListUsersQuery struct {
	Search string
	Level  *int
	IsCan  *int
	Page   int
	Limit  int
}

// ListUsersResult carries one page of users plus the total match count
type ListUsersResult struct {
	Users []domain.User
	Total int64
	Page  int
	Limit int
}

// ListUsersHandler handles list users queries
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query
func (h *ListUsersHandler) Handle(ctx context.Context, q ListUsersQuery) (*ListUsersResult, error) {
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
		Level:  q.Level,
		IsCan:  q.IsCan,
		Limit:  q.Limit,
		Offset: (q.Page - 1) * q.Limit,
	}

	users, err := h.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := h.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ListUsersResult{Users: users, Total: total, Page: q.Page, Limit: q.Limit}, nil
}
