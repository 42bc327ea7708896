package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	listdomain "github.com/ttkcys/milliyetciler/internal/list/domain"
	"github.com/ttkcys/milliyetciler/internal/list/usecase/command"
	"github.com/ttkcys/milliyetciler/internal/list/usecase/query"
	"github.com/ttkcys/milliyetciler/internal/middleware"
	"github.com/ttkcys/milliyetciler/pkg/logger"
)

// mutateRequest is the body of POST and DELETE /lists.
type mutateRequest struct {
	Kind string `json:"kind" validate:"required"`
	ID   int64  `json:"id" validate:"required,gt=0"`
}

// ListHandler handles HTTP requests for favorite lists
type ListHandler struct {
	addHandler    *command.AddItemHandler
	removeHandler *command.RemoveItemHandler
	getHandler    *query.GetListHandler
	validate      *validator.Validate

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewListHandler creates a new list handler
func NewListHandler(store listdomain.ListStore, publisher listdomain.EventPublisher, opTimeout time.Duration) *ListHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "list_requests_total",
			Help: "Total number of requests to list endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "list_request_duration_seconds",
			Help:    "Duration of list endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	locks := command.NewSharedLocks()
	return &ListHandler{
		addHandler:     command.NewAddItemHandler(store, publisher, locks, opTimeout),
		removeHandler:  command.NewRemoveItemHandler(store, publisher, locks, opTimeout),
		getHandler:     query.NewGetListHandler(store, opTimeout),
		validate:       validator.New(),
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *ListHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// AddItem handles POST /lists
func (h *ListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, req, ok := h.decodeMutate(w, r)
	if !ok {
		return
	}

	kind, err := h.addHandler.Handle(r.Context(), command.AddItemCommand{
		UserID: userID,
		Kind:   req.Kind,
		ItemID: req.ID,
	})
	if err != nil {
		h.respondListError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Eklendi",
		"kind":    kind,
		"id":      req.ID,
	})
}

// RemoveItem handles DELETE /lists
func (h *ListHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, req, ok := h.decodeMutate(w, r)
	if !ok {
		return
	}

	kind, err := h.removeHandler.Handle(r.Context(), command.RemoveItemCommand{
		UserID: userID,
		Kind:   req.Kind,
		ItemID: req.ID,
	})
	if err != nil {
		h.respondListError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Kaldırıldı",
		"kind":    kind,
		"id":      req.ID,
	})
}

// GetList handles GET /lists?kind=
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.respondMessage(w, http.StatusUnauthorized, "Oturum yok")
		return
	}

	kind, ids, err := h.getHandler.Handle(r.Context(), query.GetListQuery{
		UserID: userID,
		Kind:   r.URL.Query().Get("kind"),
	})
	if err != nil {
		h.respondListError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"kind": kind,
		"data": ids,
	})
}

func (h *ListHandler) decodeMutate(w http.ResponseWriter, r *http.Request) (uint, mutateRequest, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.respondMessage(w, http.StatusUnauthorized, "Oturum yok")
		return 0, mutateRequest{}, false
	}

	var req mutateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz istek")
		return 0, mutateRequest{}, false
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz istek")
		return 0, mutateRequest{}, false
	}
	return userID, req, true
}

func (h *ListHandler) respondListError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, listdomain.ErrAlreadyInList):
		h.respondMessage(w, http.StatusConflict, "Zaten listede")
	case errors.Is(err, listdomain.ErrItemMissing):
		h.respondMessage(w, http.StatusNotFound, "Listede yok")
	case errors.Is(err, listdomain.ErrUserMissing):
		h.respondMessage(w, http.StatusNotFound, "Kullanıcı bulunamadı")
	case errors.Is(err, apperror.ErrValidation):
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz istek")
	default:
		logger.Logger.Error().Err(err).Msg("List operation failed")
		h.respondMessage(w, http.StatusInternalServerError, "Sunucu hatası")
	}
}

func (h *ListHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func (h *ListHandler) respondMessage(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"message": message})
}

// RegisterRoutes registers list routes. All of them require a session.
func (h *ListHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/lists", h.metricsMiddleware("/lists", middleware.RequireSession(h.AddItem))).Methods("POST")
	router.HandleFunc("/lists", h.metricsMiddleware("/lists", middleware.RequireSession(h.RemoveItem))).Methods("DELETE")
	router.HandleFunc("/lists", h.metricsMiddleware("/lists", middleware.RequireSession(h.GetList))).Methods("GET")
}
