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
	"github.com/ttkcys/milliyetciler/internal/yazi/domain"
	"github.com/ttkcys/milliyetciler/internal/yazi/usecase/command"
	"github.com/ttkcys/milliyetciler/internal/yazi/usecase/query"
	"github.com/ttkcys/milliyetciler/pkg/logger"
)

type yaziBody struct {
	SayiID   uint   `json:"sayi_id" validate:"required"`
	YazarID  uint   `json:"yazar_id" validate:"required"`
	Baslik   string `json:"baslik" validate:"required"`
	SayfaNum *int   `json:"sayfa_num"`
}

// YaziHandler handles HTTP requests for articles
type YaziHandler struct {
	createHandler *command.CreateYaziHandler
	updateHandler *command.UpdateYaziHandler
	deleteHandler *command.DeleteYaziHandler
	getHandler    *query.GetYaziHandler
	listHandler   *query.ListYazisHandler
	validate      *validator.Validate

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewYaziHandler creates a new article handler
func NewYaziHandler(repo domain.YaziRepository) *YaziHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yazi_requests_total",
			Help: "Total number of requests to article endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "yazi_request_duration_seconds",
			Help:    "Duration of article endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &YaziHandler{
		createHandler:  command.NewCreateYaziHandler(repo),
		updateHandler:  command.NewUpdateYaziHandler(repo),
		deleteHandler:  command.NewDeleteYaziHandler(repo),
		getHandler:     query.NewGetYaziHandler(repo),
		listHandler:    query.NewListYazisHandler(repo),
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

func (h *YaziHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// CreateYazi handles POST /yazis
func (h *YaziHandler) CreateYazi(w http.ResponseWriter, r *http.Request) {
	var req yaziBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "`sayi_id`, `yazar_id` ve `baslik` zorunludur")
		return
	}

	yazi, err := h.createHandler.Handle(r.Context(), command.CreateYaziCommand{
		SayiID:   req.SayiID,
		YazarID:  req.YazarID,
		Baslik:   req.Baslik,
		SayfaNum: req.SayfaNum,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      yazi.ID,
		"message": "Yazı eklendi",
	})
}

// GetYazi handles GET /yazis/{id}
func (h *YaziHandler) GetYazi(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	yazi, err := h.getHandler.Handle(r.Context(), query.GetYaziQuery{ID: id})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, yazi)
}

// ListYazis handles GET /yazis
func (h *YaziHandler) ListYazis(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))

	q := query.ListYazisQuery{
		Search: params.Get("search"),
		Sort:   params.Get("sort"),
		Page:   page,
		Limit:  limit,
	}
	q.YazarID = queryID(params.Get("yazar_id"))
	q.SayiID = queryID(params.Get("sayi_id"))
	q.DergiID = queryID(params.Get("dergi_id"))

	result, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"page":  result.Page,
		"limit": result.Limit,
		"total": result.Total,
		"data":  result.Yazis,
	})
}

// UpdateYazi handles PUT /yazis/{id}
func (h *YaziHandler) UpdateYazi(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req yaziBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "`sayi_id`, `yazar_id` ve `baslik` zorunludur")
		return
	}

	yazi, err := h.updateHandler.Handle(r.Context(), command.UpdateYaziCommand{
		ID:       id,
		SayiID:   req.SayiID,
		YazarID:  req.YazarID,
		Baslik:   req.Baslik,
		SayfaNum: req.SayfaNum,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":      yazi.ID,
		"message": "Yazı güncellendi",
	})
}

// DeleteYazi handles DELETE /yazis/{id}
func (h *YaziHandler) DeleteYazi(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteYaziCommand{ID: id}); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func queryID(v string) *uint {
	if v == "" {
		return nil
	}
	parsed, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(parsed)
	return &id
}

func (h *YaziHandler) pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz ID")
		return 0, false
	}
	return uint(id), true
}

func (h *YaziHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func (h *YaziHandler) respondMessage(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"message": message})
}

func (h *YaziHandler) respondError(w http.ResponseWriter, err error) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Logger.Error().Err(err).Msg("Unexpected error")
		h.respondMessage(w, status, "Sunucu hatası")
		return
	}
	h.respondMessage(w, status, err.Error())
}

// RegisterRoutes registers article routes
func (h *YaziHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/yazis", h.metricsMiddleware("/yazis", h.ListYazis)).Methods("GET")
	router.HandleFunc("/yazis", h.metricsMiddleware("/yazis", h.CreateYazi)).Methods("POST")
	router.HandleFunc("/yazis/{id}", h.metricsMiddleware("/yazis/{id}", h.GetYazi)).Methods("GET")
	router.HandleFunc("/yazis/{id}", h.metricsMiddleware("/yazis/{id}", h.UpdateYazi)).Methods("PUT")
	router.HandleFunc("/yazis/{id}", h.metricsMiddleware("/yazis/{id}", h.DeleteYazi)).Methods("DELETE")
}
