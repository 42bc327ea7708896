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
	"github.com/ttkcys/milliyetciler/internal/dergi/domain"
	"github.com/ttkcys/milliyetciler/internal/dergi/usecase/command"
	"github.com/ttkcys/milliyetciler/internal/dergi/usecase/query"
	"github.com/ttkcys/milliyetciler/pkg/logger"
)

type dergiBody struct {
	Isim       string  `json:"isim" validate:"required"`
	AltBaslik  *string `json:"alt_baslik"`
	Slogan     *string `json:"slogan"`
	Aciklama   *string `json:"aciklama"`
	Imtiyaz    *string `json:"imtiyaz"`
	YaziMudur  *string `json:"yazi_mudur"`
	Cikis      *string `json:"cikis"`
	Bitis      *string `json:"bitis"`
	BasimYeri  *string `json:"basim_yeri"`
	ToplamSayi *string `json:"toplam_sayi"`
	Eksikler   *string `json:"eksikler"`
	Telif      *string `json:"telif"`
}

// DergiHandler handles HTTP requests for magazines
type DergiHandler struct {
	createHandler *command.CreateDergiHandler
	updateHandler *command.UpdateDergiHandler
	deleteHandler *command.DeleteDergiHandler
	getHandler    *query.GetDergiHandler
	listHandler   *query.ListDergisHandler
	validate      *validator.Validate

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewDergiHandler creates a new magazine handler
func NewDergiHandler(repo domain.DergiRepository) *DergiHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dergi_requests_total",
			Help: "Total number of requests to magazine endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dergi_request_duration_seconds",
			Help:    "Duration of magazine endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &DergiHandler{
		createHandler:  command.NewCreateDergiHandler(repo),
		updateHandler:  command.NewUpdateDergiHandler(repo),
		deleteHandler:  command.NewDeleteDergiHandler(repo),
		getHandler:     query.NewGetDergiHandler(repo),
		listHandler:    query.NewListDergisHandler(repo),
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

func (h *DergiHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// CreateDergi handles POST /dergis
func (h *DergiHandler) CreateDergi(w http.ResponseWriter, r *http.Request) {
	var req dergiBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "`isim` zorunludur")
		return
	}

	dergi, err := h.createHandler.Handle(r.Context(), h.toCreateCommand(req))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      dergi.ID,
		"message": "Dergi eklendi",
	})
}

// GetDergi handles GET /dergis/{id}
func (h *DergiHandler) GetDergi(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	dergi, err := h.getHandler.Handle(r.Context(), query.GetDergiQuery{ID: id})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, dergi)
}

// ListDergis handles GET /dergis
func (h *DergiHandler) ListDergis(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))

	result, err := h.listHandler.Handle(r.Context(), query.ListDergisQuery{
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
		"data":  result.Dergis,
	})
}

// UpdateDergi handles PUT /dergis/{id}
func (h *DergiHandler) UpdateDergi(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req dergiBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "`isim` zorunludur")
		return
	}

	cmd := command.UpdateDergiCommand{
		ID:         id,
		Isim:       req.Isim,
		AltBaslik:  req.AltBaslik,
		Slogan:     req.Slogan,
		Aciklama:   req.Aciklama,
		Imtiyaz:    req.Imtiyaz,
		YaziMudur:  req.YaziMudur,
		Cikis:      req.Cikis,
		Bitis:      req.Bitis,
		BasimYeri:  req.BasimYeri,
		ToplamSayi: req.ToplamSayi,
		Eksikler:   req.Eksikler,
		Telif:      req.Telif,
	}

	dergi, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":      dergi.ID,
		"message": "Dergi güncellendi",
	})
}

// DeleteDergi handles DELETE /dergis/{id}
func (h *DergiHandler) DeleteDergi(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteDergiCommand{ID: id}); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DergiHandler) toCreateCommand(req dergiBody) command.CreateDergiCommand {
	return command.CreateDergiCommand{
		Isim:       req.Isim,
		AltBaslik:  req.AltBaslik,
		Slogan:     req.Slogan,
		Aciklama:   req.Aciklama,
		Imtiyaz:    req.Imtiyaz,
		YaziMudur:  req.YaziMudur,
		Cikis:      req.Cikis,
		Bitis:      req.Bitis,
		BasimYeri:  req.BasimYeri,
		ToplamSayi: req.ToplamSayi,
		Eksikler:   req.Eksikler,
		Telif:      req.Telif,
	}
}

func (h *DergiHandler) pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz ID")
		return 0, false
	}
	return uint(id), true
}

func (h *DergiHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func (h *DergiHandler) respondMessage(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"message": message})
}

func (h *DergiHandler) respondError(w http.ResponseWriter, err error) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Logger.Error().Err(err).Msg("Unexpected error")
		h.respondMessage(w, status, "Sunucu hatası")
		return
	}
	h.respondMessage(w, status, err.Error())
}

// RegisterRoutes registers magazine routes
func (h *DergiHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/dergis", h.metricsMiddleware("/dergis", h.ListDergis)).Methods("GET")
	router.HandleFunc("/dergis", h.metricsMiddleware("/dergis", h.CreateDergi)).Methods("POST")
	router.HandleFunc("/dergis/{id}", h.metricsMiddleware("/dergis/{id}", h.GetDergi)).Methods("GET")
	router.HandleFunc("/dergis/{id}", h.metricsMiddleware("/dergis/{id}", h.UpdateDergi)).Methods("PUT")
	router.HandleFunc("/dergis/{id}", h.metricsMiddleware("/dergis/{id}", h.DeleteDergi)).Methods("DELETE")
}
