package command

import (
	"context"
	"errors"
	"time"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/list/domain"
	"github.com/ttkcys/milliyetciler/pkg/logger"
)

// AddItemCommand represents the command to add an item to a user's list
type AddItemCommand struct {
	UserID uint
	Kind   string
	ItemID int64
}

// AddItemHandler handles adding items to favorite lists
type AddItemHandler struct {
	store     domain.ListStore
	publisher domain.EventPublisher
	locks     *keyedMutex
	opTimeout time.Duration
}

// NewAddItemHandler creates a new add item handler. The locks argument
// must be shared with the remove handler so mutations of the same
// column serialize against each other.
func NewAddItemHandler(store domain.ListStore, publisher domain.EventPublisher, locks *SharedLocks, opTimeout time.Duration) *AddItemHandler {
	return &AddItemHandler{
		store:     store,
		publisher: publisher,
		locks:     &locks.mu,
		opTimeout: opTimeout,
	}
}

// Handle executes the add item command
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (domain.ListKind, error) {
	kind, err := domain.ParseKind(cmd.Kind)
	if err != nil {
		return "", err
	}
	if cmd.ItemID <= 0 {
		return "", apperror.ValidationFailed("id", "id must be a positive integer")
	}

	unlock := h.locks.Lock(cmd.UserID, kind)
	defer unlock()

	readCtx, cancel := context.WithTimeout(ctx, h.opTimeout)
	defer cancel()

	raw, err := h.store.ReadColumn(readCtx, cmd.UserID, kind)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return "", err
		}
		return "", apperror.Storage("read list", err)
	}

	ids := domain.ParseIDSequence(raw)
	if domain.Contains(ids, cmd.ItemID) {
		return "", domain.ErrAlreadyInList
	}
	ids = append(ids, cmd.ItemID)

	// The client may disconnect between read and write; the write must
	// still complete so the column is not left behind the decision we
	// already made.
	writeCtx, cancelWrite := context.WithTimeout(context.WithoutCancel(ctx), h.opTimeout)
	defer cancelWrite()

	rows, err := h.store.WriteColumn(writeCtx, cmd.UserID, kind, domain.SerializeIDSequence(ids))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return "", err
		}
		return "", apperror.Storage("write list", err)
	}
	if rows == 0 {
		return "", domain.ErrUserMissing
	}

	if h.publisher != nil {
		h.publisher.PublishItemAdded(ctx, cmd.UserID, kind, cmd.ItemID)
	}

	logger.Info(ctx).
		Uint("user_id", cmd.UserID).
		Str("kind", string(kind)).
		Int64("item_id", cmd.ItemID).
		Msg("Item added to list")
	return kind, nil
}
