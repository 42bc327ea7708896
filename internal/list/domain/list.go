package domain

import (
	"context"
	"encoding/json"
	"math"

	"github.com/ttkcys/milliyetciler/internal/apperror"
)

// ListKind identifies one of the per-user favorite lists.
type ListKind string

const (
	KindYazar ListKind = "author"
	KindDergi ListKind = "dergi"
	KindSayi  ListKind = "sayi"
)

var (
	// ErrUserMissing reports that the user row does not exist.
	ErrUserMissing = apperror.NotFound("user")
	// ErrItemMissing reports that the item is not in the list.
	ErrItemMissing = apperror.NotFound("item")
	// ErrAlreadyInList reports a duplicate add.
	ErrAlreadyInList = apperror.Conflict("item already in list")
)

// columns maps each list kind to its users-table column.
var columns = map[ListKind]string{
	KindYazar: "l_yazar",
	KindDergi: "l_dergi",
	KindSayi:  "l_sayi",
}

// ParseKind validates a client-supplied kind string.
func ParseKind(s string) (ListKind, error) {
	kind := ListKind(s)
	if _, ok := columns[kind]; !ok {
		return "", apperror.ValidationFailed("kind", "unknown list kind")
	}
	return kind, nil
}

// Column returns the users-table column backing this list kind.
func (k ListKind) Column() string {
	return columns[k]
}

// Kinds returns every valid list kind.
func Kinds() []ListKind {
	return []ListKind{KindYazar, KindDergi, KindSayi}
}

// ParseIDSequence decodes a stored list column into item ids. It never
// fails: malformed input yields an empty list, and entries that are not
// finite integral numbers are dropped while order is preserved.
// `[1,"x",null,2]` decodes to [1 2].
func ParseIDSequence(raw string) []int64 {
	ids := []int64{}
	if raw == "" {
		return ids
	}

	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return ids
	}

	for _, entry := range entries {
		var f float64
		if err := json.Unmarshal(entry, &f); err != nil {
			continue
		}
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			continue
		}
		ids = append(ids, int64(f))
	}
	return ids
}

// SerializeIDSequence encodes item ids back into column form. An empty
// or nil slice serializes to "[]".
func SerializeIDSequence(ids []int64) string {
	if len(ids) == 0 {
		return "[]"
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// Contains reports whether id is present in ids.
func Contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// ListStore reads and writes one list column of one user row.
type ListStore interface {
	// ReadColumn returns the raw column value for the user, or
	// apperror.ErrNotFound when no such user exists.
	ReadColumn(ctx context.Context, userID uint, kind ListKind) (string, error)
	// WriteColumn stores the raw column value and touches updated_at.
	// It returns the number of rows affected.
	WriteColumn(ctx context.Context, userID uint, kind ListKind, raw string) (int64, error)
}

// EventPublisher emits list membership change events. Implementations
// must not fail the calling operation.
type EventPublisher interface {
	PublishItemAdded(ctx context.Context, userID uint, kind ListKind, itemID int64)
	PublishItemRemoved(ctx context.Context, userID uint, kind ListKind, itemID int64)
}
