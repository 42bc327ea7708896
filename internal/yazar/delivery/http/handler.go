package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/yazar/domain"
	"github.com/ttkcys/milliyetciler/internal/yazar/usecase/command"
	"github.com/ttkcys/milliyetciler/internal/yazar/usecase/query"
	"github.com/ttkcys/milliyetciler/pkg/logger"
)

type yazarBody struct {
	Isim      string  `json:"isim" validate:"required"`
	Biyografi *string `json:"biyografi"`
	Dogum     *string `json:"dogum"`
	Olum      *string `json:"olum"`
	Parent    *string `json:"parent"`
	Childs    *string `json:"childs"`
	Image     *string `json:"image"`
}

// YazarHandler handles HTTP requests for authors
type YazarHandler struct {
	createHandler *command.CreateYazarHandler
	updateHandler *command.UpdateYazarHandler
	patchHandler  *command.PatchYazarHandler
	deleteHandler *command.DeleteYazarHandler
	getHandler    *query.GetYazarHandler
	listHandler   *query.ListYazarsHandler
	validate      *validator.Validate

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewYazarHandler creates a new author handler
func NewYazarHandler(repo domain.YazarRepository) *YazarHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yazar_requests_total",
			Help: "Total number of requests to author endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "yazar_request_duration_seconds",
			Help:    "Duration of author endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &YazarHandler{
		createHandler:  command.NewCreateYazarHandler(repo),
		updateHandler:  command.NewUpdateYazarHandler(repo),
		patchHandler:   command.NewPatchYazarHandler(repo),
		deleteHandler:  command.NewDeleteYazarHandler(repo),
		getHandler:     query.NewGetYazarHandler(repo),
		listHandler:    query.NewListYazarsHandler(repo),
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

func (h *YazarHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// CreateYazar handles POST /yazars
func (h *YazarHandler) CreateYazar(w http.ResponseWriter, r *http.Request) {
	var req yazarBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "`isim` zorunludur")
		return
	}

	yazar, err := h.createHandler.Handle(r.Context(), command.CreateYazarCommand{
		Isim:      req.Isim,
		Biyografi: req.Biyografi,
		Dogum:     req.Dogum,
		Olum:      req.Olum,
		Parent:    req.Parent,
		Childs:    req.Childs,
		Image:     req.Image,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      yazar.ID,
		"message": "Yazar eklendi",
	})
}

// GetYazar handles GET /yazars/{id}
func (h *YazarHandler) GetYazar(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	yazar, err := h.getHandler.Handle(r.Context(), query.GetYazarQuery{ID: id})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, yazar)
}

// ListYazars handles GET /yazars
func (h *YazarHandler) ListYazars(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))

	result, err := h.listHandler.Handle(r.Context(), query.ListYazarsQuery{
		Search: params.Get("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"page":  result.Page,
		"limit": result.Limit,
		"total": result.Total,
		"data":  result.Yazars,
	})
}

// UpdateYazar handles PUT /yazars/{id}
func (h *YazarHandler) UpdateYazar(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req yazarBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "`isim` zorunludur")
		return
	}

	yazar, err := h.updateHandler.Handle(r.Context(), command.UpdateYazarCommand{
		ID:        id,
		Isim:      req.Isim,
		Biyografi: req.Biyografi,
		Dogum:     req.Dogum,
		Olum:      req.Olum,
		Parent:    req.Parent,
		Childs:    req.Childs,
		Image:     req.Image,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":      yazar.ID,
		"message": "Yazar güncellendi",
	})
}

// PatchYazar handles PATCH /yazars/{id}
func (h *YazarHandler) PatchYazar(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Isim      *string `json:"isim"`
		Biyografi *string `json:"biyografi"`
		Dogum     *string `json:"dogum"`
		Olum      *string `json:"olum"`
		Parent    *string `json:"parent"`
		Childs    *string `json:"childs"`
		Image     *string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	yazar, err := h.patchHandler.Handle(r.Context(), command.PatchYazarCommand{
		ID:        id,
		Isim:      req.Isim,
		Biyografi: req.Biyografi,
		Dogum:     req.Dogum,
		Olum:      req.Olum,
		Parent:    req.Parent,
		Childs:    req.Childs,
		Image:     req.Image,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, yazar)
}

// DeleteYazar handles DELETE /yazars/{id}
func (h *YazarHandler) DeleteYazar(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteYazarCommand{ID: id}); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *YazarHandler) pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz ID")
		return 0, false
	}
	return uint(id), true
}

func (h *YazarHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func (h *YazarHandler) respondMessage(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"message": message})
}

func (h *YazarHandler) respondError(w http.ResponseWriter, err error) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Logger.Error().Err(err).Msg("Unexpected error")
		h.respondMessage(w, status, "Sunucu hatası")
		return
	}
	h.respondMessage(w, status, err.Error())
}

// RegisterRoutes registers author routes
func (h *YazarHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/yazars", h.metricsMiddleware("/yazars", h.ListYazars)).Methods("GET")
	router.HandleFunc("/yazars", h.metricsMiddleware("/yazars", h.CreateYazar)).Methods("POST")
	router.HandleFunc("/yazars/{id}", h.metricsMiddleware("/yazars/{id}", h.GetYazar)).Methods("GET")
	router.HandleFunc("/yazars/{id}", h.metricsMiddleware("/yazars/{id}", h.UpdateYazar)).Methods("PUT")
	router.HandleFunc("/yazars/{id}", h.metricsMiddleware("/yazars/{id}", h.PatchYazar)).Methods("PATCH")
	router.HandleFunc("/yazars/{id}", h.metricsMiddleware("/yazars/{id}", h.DeleteYazar)).Methods("DELETE")
}
