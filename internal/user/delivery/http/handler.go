package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/middleware"
	"github.com/ttkcys/milliyetciler/internal/user/domain"
	"github.com/ttkcys/milliyetciler/internal/user/usecase/command"
	"github.com/ttkcys/milliyetciler/internal/user/usecase/query"
	"github.com/ttkcys/milliyetciler/pkg/auth"
	"github.com/ttkcys/milliyetciler/pkg/logger"
)

// UserHandler handles HTTP requests for users and sessions
type UserHandler struct {
	loginHandler  *command.LoginUserHandler
	createHandler *command.CreateUserHandler
	updateHandler *command.UpdateUserHandler
	deleteHandler *command.DeleteUserHandler

	getUserHandler *query.GetUserHandler
	listHandler    *query.ListUsersHandler

	validate     *validator.Validate
	sessionTTL   time.Duration
	cookieSecure bool

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewUserHandler creates a new user handler
func NewUserHandler(repo domain.UserRepository, sessionTTL time.Duration, cookieSecure bool) *UserHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_requests_total",
			Help: "Total number of requests to user endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "user_request_duration_seconds",
			Help:    "Duration of user endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &UserHandler{
		loginHandler:   command.NewLoginUserHandler(repo, sessionTTL),
		createHandler:  command.NewCreateUserHandler(repo),
		updateHandler:  command.NewUpdateUserHandler(repo),
		deleteHandler:  command.NewDeleteUserHandler(repo),
		getUserHandler: query.NewGetUserHandler(repo),
		listHandler:    query.NewListUsersHandler(repo),
		validate:       validator.New(),
		sessionTTL:     sessionTTL,
		cookieSecure:   cookieSecure,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *UserHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Login handles POST /login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "E-posta ve şifre zorunlu.")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "E-posta ve şifre zorunlu.")
		return
	}

	cmd := command.LoginUserCommand{Email: req.Email, Password: req.Password}
	resp, err := h.loginHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    resp.Token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":      resp.User.ID,
		"name":    resp.User.Name,
		"email":   resp.User.Email,
		"message": "Giriş başarılı",
	})
}

// Logout handles POST /logout
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.respondMessage(w, http.StatusOK, "Çıkış yapıldı")
}

// Me handles GET /me (authenticated user)
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.respondMessage(w, http.StatusUnauthorized, "Oturum yok")
		return
	}

	user, err := h.getUserHandler.Handle(r.Context(), query.GetUserQuery{ID: userID})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string  `json:"name" validate:"required"`
		Email     string  `json:"email" validate:"required,email"`
		Password  string  `json:"password"`
		Level     int     `json:"level"`
		IsCan     int     `json:"is_can"`
		Tel       *string `json:"tel"`
		Adres     *string `json:"adres"`
		Meslek    *string `json:"meslek"`
		Kurum     *string `json:"kurum"`
		Kullanim  *string `json:"kullanim"`
		Biyografi *string `json:"biyografi"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "`name` ve `email` zorunludur")
		return
	}

	cmd := command.CreateUserCommand{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Level:     req.Level,
		IsCan:     req.IsCan,
		Tel:       req.Tel,
		Adres:     req.Adres,
		Meslek:    req.Meslek,
		Kurum:     req.Kurum,
		Kullanim:  req.Kullanim,
		Biyografi: req.Biyografi,
	}

	user, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      user.ID,
		"message": "Kullanıcı eklendi",
	})
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	user, err := h.getUserHandler.Handle(r.Context(), query.GetUserQuery{ID: id})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))

	q := query.ListUsersQuery{
		Search: params.Get("search"),
		Page:   page,
		Limit:  limit,
	}
	if v := params.Get("level"); v != "" {
		if level, err := strconv.Atoi(v); err == nil {
			q.Level = &level
		}
	}
	if v := params.Get("isCan"); v != "" {
		if isCan, err := strconv.Atoi(v); err == nil {
			q.IsCan = &isCan
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
		"data":  result.Users,
	})
}

// UpdateUser handles PUT /users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Name      string  `json:"name" validate:"required"`
		Email     string  `json:"email" validate:"required,email"`
		Password  string  `json:"password"`
		Level     *int    `json:"level"`
		IsCan     *int    `json:"is_can"`
		Tel       *string `json:"tel"`
		Adres     *string `json:"adres"`
		Meslek    *string `json:"meslek"`
		Kurum     *string `json:"kurum"`
		Kullanim  *string `json:"kullanim"`
		Biyografi *string `json:"biyografi"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "`name` ve `email` zorunludur")
		return
	}

	cmd := command.UpdateUserCommand{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Level:     req.Level,
		IsCan:     req.IsCan,
		Tel:       req.Tel,
		Adres:     req.Adres,
		Meslek:    req.Meslek,
		Kurum:     req.Kurum,
		Kullanim:  req.Kullanim,
		Biyografi: req.Biyografi,
	}

	user, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":      user.ID,
		"message": "Kullanıcı güncellendi",
	})
}

// DeleteUser handles DELETE /users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteUserCommand{ID: id}); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health
func (h *UserHandler) HealthCheck(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			h.respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
		h.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

func (h *UserHandler) pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz ID")
		return 0, false
	}
	return uint(id), true
}

func (h *UserHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func (h *UserHandler) respondMessage(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"message": message})
}

func (h *UserHandler) respondError(w http.ResponseWriter, err error) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Logger.Error().Err(err).Msg("Unexpected error")
		h.respondMessage(w, status, "Sunucu hatası")
		return
	}
	h.respondMessage(w, status, err.Error())
}

// RegisterRoutes registers user and session routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/login", h.metricsMiddleware("/login", h.Login)).Methods("POST")
	router.HandleFunc("/logout", h.metricsMiddleware("/logout", h.Logout)).Methods("POST")
	router.HandleFunc("/me", h.metricsMiddleware("/me", middleware.RequireSession(h.Me))).Methods("GET")

	router.HandleFunc("/users", h.metricsMiddleware("/users", h.ListUsers)).Methods("GET")
	router.HandleFunc("/users", h.metricsMiddleware("/users", h.CreateUser)).Methods("POST")
	router.HandleFunc("/users/{id}", h.metricsMiddleware("/users/{id}", h.GetUser)).Methods("GET")
	router.HandleFunc("/users/{id}", h.metricsMiddleware("/users/{id}", h.UpdateUser)).Methods("PUT")
	router.HandleFunc("/users/{id}", h.metricsMiddleware("/users/{id}", h.DeleteUser)).Methods("DELETE")
}
