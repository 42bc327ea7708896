package query

import (
	"context"
	"errors"
	"time"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/list/domain"
)

// GetListQuery represents the query to read one of a user's lists
type GetListQuery struct {
	UserID uint
	Kind   string
}

// GetListHandler handles list read queries
type GetListHandler struct {
	store     domain.ListStore
	opTimeout time.Duration
}

// NewGetListHandler creates a new get list handler
func NewGetListHandler(store domain.ListStore, opTimeout time.Duration) *GetListHandler {
	return &GetListHandler{store: store, opTimeout: opTimeout}
}

// Handle executes the get list query
func (h *GetListHandler) Handle(ctx context.Context, q GetListQuery) (domain.ListKind, []int64, error) {
	kind, err := domain.ParseKind(q.Kind)
	if err != nil {
		return "", nil, err
	}

	readCtx, cancel := context.WithTimeout(ctx, h.opTimeout)
	defer cancel()

	raw, err := h.store.ReadColumn(readCtx, q.UserID, kind)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return "", nil, err
		}
		return "", nil, apperror.Storage("read list", err)
	}
	return kind, domain.ParseIDSequence(raw), nil
}
