package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ttkcys/milliyetciler/internal/search/usecase/query"
	"github.com/ttkcys/milliyetciler/pkg/logger"
)

// SearchHandler handles HTTP requests for faceted search
type SearchHandler struct {
	searchHandler *query.SearchHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewSearchHandler creates a new search HTTP handler
func NewSearchHandler(searchHandler *query.SearchHandler) *SearchHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total number of search requests",
		},
		[]string{"status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "search_request_duration_seconds",
			Help:    "Duration of search requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &SearchHandler{
		searchHandler:  searchHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// Search handles GET /search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params := r.URL.Query()
	term := params.Get("q")
	if term == "" {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"message": "`q` zorunludur"})
		h.requestCounter.WithLabelValues("400").Inc()
		return
	}
	limit, _ := strconv.Atoi(params.Get("limit"))

	result := h.searchHandler.Handle(r.Context(), query.SearchQuery{Term: term, Limit: limit})

	h.respondJSON(w, http.StatusOK, result)
	h.requestCounter.WithLabelValues("200").Inc()
	h.requestLatency.WithLabelValues("/search").Observe(time.Since(start).Seconds())
}

func (h *SearchHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

// RegisterRoutes registers search routes
func (h *SearchHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/search", h.Search).Methods("GET")
}
