package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttkcys/milliyetciler/internal/list/domain"
	"github.com/ttkcys/milliyetciler/internal/middleware"
	"github.com/ttkcys/milliyetciler/pkg/auth"
)

type memStore struct {
	mu      sync.Mutex
	columns map[uint]map[domain.ListKind]string
}

func newMemStore(userIDs ...uint) *memStore {
	s := &memStore{columns: make(map[uint]map[domain.ListKind]string)}
	for _, id := range userIDs {
		s.columns[id] = map[domain.ListKind]string{
			domain.KindYazar: "[]",
			domain.KindDergi: "[]",
			domain.KindSayi:  "[]",
		}
	}
	return s
}

func (s *memStore) ReadColumn(ctx context.Context, userID uint, kind domain.ListKind) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cols, ok := s.columns[userID]
	if !ok {
		return "", domain.ErrUserMissing
	}
	return cols[kind], nil
}

func (s *memStore) WriteColumn(ctx context.Context, userID uint, kind domain.ListKind, raw string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cols, ok := s.columns[userID]
	if !ok {
		return 0, nil
	}
	cols[kind] = raw
	return 1, nil
}

var (
	testStore  *memStore
	testRouter http.Handler
	setupOnce  sync.Once
)

// setup builds the router once; prometheus collectors can only be
// registered a single time per process.
func setup(t *testing.T) (*memStore, http.Handler) {
	t.Helper()
	setupOnce.Do(func() {
		testStore = newMemStore(1)
		handler := NewListHandler(testStore, nil, time.Second)
		router := mux.NewRouter()
		handler.RegisterRoutes(router)
		testRouter = middleware.Session(router)
	})
	return testStore, testRouter
}

func sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := auth.GenerateToken(1, "u1@example.com", 0, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: auth.SessionCookieName, Value: token}
}

func doRequest(router http.Handler, method, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/lists", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestListLifecycle(t *testing.T) {
	store, router := setup(t)
	cookie := sessionCookie(t)

	// no session
	rec := doRequest(router, http.MethodPost, `{"kind":"dergi","id":5}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Oturum yok", decodeMessage(t, rec)["message"])

	// add
	rec = doRequest(router, http.MethodPost, `{"kind":"dergi","id":5}`, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeMessage(t, rec)
	assert.Equal(t, "Eklendi", body["message"])
	assert.Equal(t, "dergi", body["kind"])
	assert.Equal(t, float64(5), body["id"])
	assert.Equal(t, "[5]", store.columns[1][domain.KindDergi])

	// duplicate add
	rec = doRequest(router, http.MethodPost, `{"kind":"dergi","id":5}`, cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Zaten listede", decodeMessage(t, rec)["message"])

	// read
	req := httptest.NewRequest(http.MethodGet, "/lists?kind=dergi", nil)
	req.AddCookie(cookie)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, req)
	require.Equal(t, http.StatusOK, getRec.Code)
	var listBody struct {
		Kind string  `json:"kind"`
		Data []int64 `json:"data"`
	}
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &listBody))
	assert.Equal(t, "dergi", listBody.Kind)
	assert.Equal(t, []int64{5}, listBody.Data)

	// remove
	rec = doRequest(router, http.MethodDelete, `{"kind":"dergi","id":5}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Kaldırıldı", decodeMessage(t, rec)["message"])
	assert.Equal(t, "[]", store.columns[1][domain.KindDergi])

	// remove again
	rec = doRequest(router, http.MethodDelete, `{"kind":"dergi","id":5}`, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Listede yok", decodeMessage(t, rec)["message"])
}

func TestListValidation(t *testing.T) {
	_, router := setup(t)
	cookie := sessionCookie(t)

	for _, body := range []string{
		`{"kind":"unknown","id":5}`,
		`{"kind":"dergi","id":0}`,
		`{"kind":"dergi"}`,
		`{"id":5}`,
		`not json`,
	} {
		rec := doRequest(router, http.MethodPost, body, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Equal(t, "Geçersiz istek", decodeMessage(t, rec)["message"])
	}
}

func TestListUserMissing(t *testing.T) {
	_, router := setup(t)

	token, err := auth.GenerateToken(99, "ghost@example.com", 0, time.Hour)
	require.NoError(t, err)
	cookie := &http.Cookie{Name: auth.SessionCookieName, Value: token}

	rec := doRequest(router, http.MethodPost, `{"kind":"author","id":1}`, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Kullanıcı bulunamadı", decodeMessage(t, rec)["message"])
}

func TestListInvalidCookieIsAnonymous(t *testing.T) {
	_, router := setup(t)

	cookie := &http.Cookie{Name: auth.SessionCookieName, Value: "garbage"}
	rec := doRequest(router, http.MethodPost, `{"kind":"author","id":1}`, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
