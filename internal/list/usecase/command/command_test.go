package command

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/list/domain"
)

// fakeStore is an in-memory ListStore keyed by (userID, kind).
type fakeStore struct {
	mu      sync.Mutex
	columns map[uint]map[domain.ListKind]string
	writes  int
	readErr error
	// when true, every write reports zero affected rows
	rowVanished bool
}

func newFakeStore(userIDs ...uint) *fakeStore {
	s := &fakeStore{columns: make(map[uint]map[domain.ListKind]string)}
	for _, id := range userIDs {
		s.columns[id] = map[domain.ListKind]string{
			domain.KindYazar: "[]",
			domain.KindDergi: "[]",
			domain.KindSayi:  "[]",
		}
	}
	return s
}

func (s *fakeStore) ReadColumn(ctx context.Context, userID uint, kind domain.ListKind) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return "", s.readErr
	}
	cols, ok := s.columns[userID]
	if !ok {
		return "", domain.ErrUserMissing
	}
	return cols[kind], nil
}

func (s *fakeStore) WriteColumn(ctx context.Context, userID uint, kind domain.ListKind, raw string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rowVanished {
		return 0, nil
	}
	cols, ok := s.columns[userID]
	if !ok {
		return 0, nil
	}
	cols[kind] = raw
	s.writes++
	return 1, nil
}

func (s *fakeStore) column(userID uint, kind domain.ListKind) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.columns[userID][kind]
}

func (s *fakeStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func newHandlers(store domain.ListStore) (*AddItemHandler, *RemoveItemHandler) {
	locks := NewSharedLocks()
	return NewAddItemHandler(store, nil, locks, time.Second),
		NewRemoveItemHandler(store, nil, locks, time.Second)
}

func TestAddItemThenContains(t *testing.T) {
	store := newFakeStore(1)
	add, _ := newHandlers(store)

	kind, err := add.Handle(context.Background(), AddItemCommand{UserID: 1, Kind: "author", ItemID: 42})
	require.NoError(t, err)
	assert.Equal(t, domain.KindYazar, kind)
	assert.Equal(t, "[42]", store.column(1, domain.KindYazar))
}

func TestAddItemDuplicateRejected(t *testing.T) {
	store := newFakeStore(1)
	add, _ := newHandlers(store)
	ctx := context.Background()

	_, err := add.Handle(ctx, AddItemCommand{UserID: 1, Kind: "author", ItemID: 42})
	require.NoError(t, err)

	_, err = add.Handle(ctx, AddItemCommand{UserID: 1, Kind: "author", ItemID: 42})
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Equal(t, "[42]", store.column(1, domain.KindYazar), "list must still contain 42 exactly once")
	assert.Equal(t, 1, store.writeCount(), "duplicate add must not write")
}

func TestAddItemAppendsInOrder(t *testing.T) {
	store := newFakeStore(1)
	add, _ := newHandlers(store)
	ctx := context.Background()

	for _, id := range []int64{5, 3, 9} {
		_, err := add.Handle(ctx, AddItemCommand{UserID: 1, Kind: "dergi", ItemID: id})
		require.NoError(t, err)
	}
	assert.Equal(t, "[5,3,9]", store.column(1, domain.KindDergi))
}

func TestAddItemUnknownKindNoWrite(t *testing.T) {
	store := newFakeStore(1)
	add, _ := newHandlers(store)

	_, err := add.Handle(context.Background(), AddItemCommand{UserID: 1, Kind: "unknown", ItemID: 1})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Equal(t, 0, store.writeCount())
}

func TestAddItemInvalidID(t *testing.T) {
	store := newFakeStore(1)
	add, _ := newHandlers(store)
	ctx := context.Background()

	for _, id := range []int64{0, -3} {
		_, err := add.Handle(ctx, AddItemCommand{UserID: 1, Kind: "author", ItemID: id})
		assert.ErrorIs(t, err, apperror.ErrValidation, "id %d", id)
	}
	assert.Equal(t, 0, store.writeCount())
}

func TestAddItemUserMissing(t *testing.T) {
	store := newFakeStore()
	add, _ := newHandlers(store)

	_, err := add.Handle(context.Background(), AddItemCommand{UserID: 7, Kind: "author", ItemID: 1})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestAddItemRowVanishedBetweenReadAndWrite(t *testing.T) {
	store := newFakeStore(1)
	store.rowVanished = true
	add, _ := newHandlers(store)

	_, err := add.Handle(context.Background(), AddItemCommand{UserID: 1, Kind: "author", ItemID: 1})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestAddItemStorageFailure(t *testing.T) {
	store := newFakeStore(1)
	store.readErr = errors.New("connection reset")
	add, _ := newHandlers(store)

	_, err := add.Handle(context.Background(), AddItemCommand{UserID: 1, Kind: "author", ItemID: 1})
	assert.ErrorIs(t, err, apperror.ErrStorage)
}

func TestAddItemSelfHealsCorruptColumn(t *testing.T) {
	store := newFakeStore(1)
	store.columns[1][domain.KindSayi] = "not json at all"
	add, _ := newHandlers(store)

	_, err := add.Handle(context.Background(), AddItemCommand{UserID: 1, Kind: "sayi", ItemID: 8})
	require.NoError(t, err)
	assert.Equal(t, "[8]", store.column(1, domain.KindSayi))
}

func TestCrossKindIsolation(t *testing.T) {
	store := newFakeStore(1)
	add, _ := newHandlers(store)

	_, err := add.Handle(context.Background(), AddItemCommand{UserID: 1, Kind: "author", ItemID: 7})
	require.NoError(t, err)

	assert.Equal(t, "[7]", store.column(1, domain.KindYazar))
	assert.Equal(t, "[]", store.column(1, domain.KindDergi))
	assert.Equal(t, "[]", store.column(1, domain.KindSayi))
}

func TestRemoveItemThenAbsent(t *testing.T) {
	store := newFakeStore(1)
	add, remove := newHandlers(store)
	ctx := context.Background()

	_, err := add.Handle(ctx, AddItemCommand{UserID: 1, Kind: "author", ItemID: 42})
	require.NoError(t, err)

	kind, err := remove.Handle(ctx, RemoveItemCommand{UserID: 1, Kind: "author", ItemID: 42})
	require.NoError(t, err)
	assert.Equal(t, domain.KindYazar, kind)
	assert.Equal(t, "[]", store.column(1, domain.KindYazar))

	_, err = remove.Handle(ctx, RemoveItemCommand{UserID: 1, Kind: "author", ItemID: 42})
	assert.ErrorIs(t, err, apperror.ErrNotFound, "second remove must report not found")
}

func TestRemoveItemAbsentNoWrite(t *testing.T) {
	store := newFakeStore(1)
	_, remove := newHandlers(store)

	_, err := remove.Handle(context.Background(), RemoveItemCommand{UserID: 1, Kind: "dergi", ItemID: 5})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, 0, store.writeCount())
}

func TestRemoveItemFiltersAllOccurrences(t *testing.T) {
	store := newFakeStore(1)
	store.columns[1][domain.KindYazar] = "[4,7,4]"
	_, remove := newHandlers(store)

	_, err := remove.Handle(context.Background(), RemoveItemCommand{UserID: 1, Kind: "author", ItemID: 4})
	require.NoError(t, err)
	assert.Equal(t, "[7]", store.column(1, domain.KindYazar))
}

func TestConcurrentAddsLoseNothing(t *testing.T) {
	store := newFakeStore(1)
	add, _ := newHandlers(store)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 1; i <= n; i++ {
		go func(id int64) {
			defer wg.Done()
			_, err := add.Handle(ctx, AddItemCommand{UserID: 1, Kind: "author", ItemID: id})
			assert.NoError(t, err)
		}(int64(i))
	}
	wg.Wait()

	ids := domain.ParseIDSequence(store.column(1, domain.KindYazar))
	assert.Len(t, ids, n, "every concurrent append must survive")
	seen := make(map[int64]bool, n)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
}

func TestConcurrentAddRemoveStaysConsistent(t *testing.T) {
	store := newFakeStore(1)
	add, remove := newHandlers(store)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 1; i <= n; i++ {
		go func(id int64) {
			defer wg.Done()
			_, err := add.Handle(ctx, AddItemCommand{UserID: 1, Kind: "sayi", ItemID: id})
			assert.NoError(t, err)
		}(int64(i))
		go func(id int64) {
			defer wg.Done()
			// May observe the id before or after its add; both
			// outcomes are legal, corruption is not.
			_, err := remove.Handle(ctx, RemoveItemCommand{UserID: 1, Kind: "sayi", ItemID: id})
			if err != nil {
				assert.ErrorIs(t, err, apperror.ErrNotFound)
			}
		}(int64(i))
	}
	wg.Wait()

	ids := domain.ParseIDSequence(store.column(1, domain.KindSayi))
	seen := make(map[int64]bool)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
}
