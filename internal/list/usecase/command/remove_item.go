package command

import (
	"context"
	"errors"
	"time"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/list/domain"
	"github.com/ttkcys/milliyetciler/pkg/logger"
)

// RemoveItemCommand represents the command to remove an item from a user's list
type RemoveItemCommand struct {
	UserID uint
	Kind   string
	ItemID int64
}

// RemoveItemHandler handles removing items from favorite lists
type RemoveItemHandler struct {
	store     domain.ListStore
	publisher domain.EventPublisher
	locks     *keyedMutex
	opTimeout time.Duration
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(store domain.ListStore, publisher domain.EventPublisher, locks *SharedLocks, opTimeout time.Duration) *RemoveItemHandler {
	return &RemoveItemHandler{
		store:     store,
		publisher: publisher,
		locks:     &locks.mu,
		opTimeout: opTimeout,
	}
}

// Handle executes the remove item command. Removing an id that is not
// in the list reports not-found without touching the row, so repeated
// deletes are safe.
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) (domain.ListKind, error) {
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
	kept := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id != cmd.ItemID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(ids) {
		return "", domain.ErrItemMissing
	}

	writeCtx, cancelWrite := context.WithTimeout(context.WithoutCancel(ctx), h.opTimeout)
	defer cancelWrite()

	rows, err := h.store.WriteColumn(writeCtx, cmd.UserID, kind, domain.SerializeIDSequence(kept))
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
		h.publisher.PublishItemRemoved(ctx, cmd.UserID, kind, cmd.ItemID)
	}

	logger.Info(ctx).
		Uint("user_id", cmd.UserID).
		Str("kind", string(kind)).
		Int64("item_id", cmd.ItemID).
		Msg("Item removed from list")
	return kind, nil
}
