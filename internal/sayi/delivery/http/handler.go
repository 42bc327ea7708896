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
	"github.com/ttkcys/milliyetciler/internal/sayi/domain"
	"github.com/ttkcys/milliyetciler/internal/sayi/usecase/command"
	"github.com/ttkcys/milliyetciler/internal/sayi/usecase/query"
	"github.com/ttkcys/milliyetciler/pkg/logger"
)

type sayiBody struct {
	DergiID     uint    `json:"dergi_id" validate:"required"`
	SayiNum     string  `json:"sayi_num" validate:"required"`
	Ay          *string `json:"ay"`
	Yil         *int    `json:"yil"`
	Image       *string `json:"image"`
	Pdf         *string `json:"pdf"`
	ToplamSayfa *int    `json:"toplam_sayfa"`
	ToplamYazi  *int    `json:"toplam_yazi"`
}

// SayiHandler handles HTTP requests for issues
type SayiHandler struct {
	createHandler *command.CreateSayiHandler
	updateHandler *command.UpdateSayiHandler
	deleteHandler *command.DeleteSayiHandler
	getHandler    *query.GetSayiHandler
	listHandler   *query.ListSayisHandler
	validate      *validator.Validate

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewSayiHandler creates a new issue handler
func NewSayiHandler(repo domain.SayiRepository) *SayiHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sayi_requests_total",
			Help: "Total number of requests to issue endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sayi_request_duration_seconds",
			Help:    "Duration of issue endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &SayiHandler{
		createHandler:  command.NewCreateSayiHandler(repo),
		updateHandler:  command.NewUpdateSayiHandler(repo),
		deleteHandler:  command.NewDeleteSayiHandler(repo),
		getHandler:     query.NewGetSayiHandler(repo),
		listHandler:    query.NewListSayisHandler(repo),
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

func (h *SayiHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// CreateSayi handles POST /sayis
func (h *SayiHandler) CreateSayi(w http.ResponseWriter, r *http.Request) {
	var req sayiBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "`dergi_id` ve `sayi_num` zorunludur")
		return
	}

	sayi, err := h.createHandler.Handle(r.Context(), command.CreateSayiCommand{
		DergiID:     req.DergiID,
		SayiNum:     req.SayiNum,
		Ay:          req.Ay,
		Yil:         req.Yil,
		Image:       req.Image,
		Pdf:         req.Pdf,
		ToplamSayfa: req.ToplamSayfa,
		ToplamYazi:  req.ToplamYazi,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      sayi.ID,
		"message": "Sayı eklendi",
	})
}

// GetSayi handles GET /sayis/{id}
func (h *SayiHandler) GetSayi(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	sayi, err := h.getHandler.Handle(r.Context(), query.GetSayiQuery{ID: id})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, sayi)
}

// ListSayis handles GET /sayis
func (h *SayiHandler) ListSayis(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))

	q := query.ListSayisQuery{
		Search: params.Get("search"),
		Page:   page,
		Limit:  limit,
	}
	if v := params.Get("dergi_id"); v != "" {
		if dergiID, err := strconv.ParseUint(v, 10, 32); err == nil {
			id := uint(dergiID)
			q.DergiID = &id
		}
	}
	if v := params.Get("yil"); v != "" {
		if yil, err := strconv.Atoi(v); err == nil {
			q.Yil = &yil
		}
	}

	result, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"page":  result.Page,
		"limit": result.Limit,
		"total": result.Total,
		"data":  result.Sayis,
	})
}

// UpdateSayi handles PUT /sayis/{id}
func (h *SayiHandler) UpdateSayi(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req sayiBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "`dergi_id` ve `sayi_num` zorunludur")
		return
	}

	sayi, err := h.updateHandler.Handle(r.Context(), command.UpdateSayiCommand{
		ID:          id,
		DergiID:     req.DergiID,
		SayiNum:     req.SayiNum,
		Ay:          req.Ay,
		Yil:         req.Yil,
		Image:       req.Image,
		Pdf:         req.Pdf,
		ToplamSayfa: req.ToplamSayfa,
		ToplamYazi:  req.ToplamYazi,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":      sayi.ID,
		"message": "Sayı güncellendi",
	})
}

// DeleteSayi handles DELETE /sayis/{id}
func (h *SayiHandler) DeleteSayi(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteSayiCommand{ID: id}); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SayiHandler) pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz ID")
		return 0, false
	}
	return uint(id), true
}

func (h *SayiHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func (h *SayiHandler) respondMessage(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"message": message})
}

func (h *SayiHandler) respondError(w http.ResponseWriter, err error) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Logger.Error().Err(err).Msg("Unexpected error")
		h.respondMessage(w, status, "Sunucu hatası")
		return
	}
	h.respondMessage(w, status, err.Error())
}

// RegisterRoutes registers issue routes
func (h *SayiHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/sayis", h.metricsMiddleware("/sayis", h.ListSayis)).Methods("GET")
	router.HandleFunc("/sayis", h.metricsMiddleware("/sayis", h.CreateSayi)).Methods("POST")
	router.HandleFunc("/sayis/{id}", h.metricsMiddleware("/sayis/{id}", h.GetSayi)).Methods("GET")
	router.HandleFunc("/sayis/{id}", h.metricsMiddleware("/sayis/{id}", h.UpdateSayi)).Methods("PUT")
	router.HandleFunc("/sayis/{id}", h.metricsMiddleware("/sayis/{id}", h.DeleteSayi)).Methods("DELETE")
}
