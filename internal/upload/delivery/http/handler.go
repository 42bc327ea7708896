package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ttkcys/milliyetciler/pkg/logger"
)

const maxUploadSize = 20 << 20 // 20 MiB

// UploadHandler stores uploaded media files under the configured
// media directory.
type UploadHandler struct {
	mediaDir string
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(mediaDir string) *UploadHandler {
	return &UploadHandler{mediaDir: mediaDir}
}

// Upload handles POST /upload
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondMessage(w, http.StatusBadRequest, "`file` alanı zorunludur")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	relPath := filepath.Join("yazarlar", name)

	targetDir := filepath.Join(h.mediaDir, "yazarlar")
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create media directory")
		h.respondMessage(w, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	dst, err := os.Create(filepath.Join(targetDir, name))
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create upload target")
		h.respondMessage(w, http.StatusInternalServerError, "Sunucu hatası")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to store upload")
		h.respondMessage(w, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]string{
		"path": filepath.ToSlash(relPath),
		"url":  "/" + filepath.ToSlash(relPath),
	})
}

func (h *UploadHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func (h *UploadHandler) respondMessage(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"message": message})
}

// RegisterRoutes registers upload routes
func (h *UploadHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/upload", h.Upload).Methods("POST")
}
