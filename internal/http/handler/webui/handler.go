package webui

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bornholm/intake/internal/file"
	patientModule "github.com/bornholm/intake/internal/http/handler/webui/patient"
	"github.com/bornholm/intake/internal/slogx"
	"github.com/bornholm/intake/internal/store"
	"github.com/gorilla/sessions"
)

type Handler struct {
	mux         *http.ServeMux
	store       *store.Store
	fileStorage *file.Storage
	logger      *slog.Logger
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(store *store.Store, fileStorage *file.Storage, sessionStore sessions.Store, logger *slog.Logger, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	mux := http.NewServeMux()

	h := &Handler{
		mux:         mux,
		store:       store,
		fileStorage: fileStorage,
		logger:      logger,
	}

	mux.HandleFunc("GET /health", h.getHealthCheck)
	mount(mux, "/", patientModule.NewHandler(store, fileStorage, sessionStore, logger, opts.Patient...))

	return h
}

func (h *Handler) getHealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	w.Header().Set("Content-Type", "application/json")

	if err := h.store.Ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, "database unavailable", slogx.Error(err))
		writeHealth(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	if err := h.fileStorage.Check(); err != nil {
		h.logger.ErrorContext(ctx, "file storage unavailable", slogx.Error(err))
		writeHealth(w, http.StatusServiceUnavailable, "file system unavailable")
		return
	}

	writeHealth(w, http.StatusOK, "")
}

func writeHealth(w http.ResponseWriter, statusCode int, reason string) {
	payload := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	}

	if reason != "" {
		payload["status"] = "unhealthy"
		payload["error"] = reason
	}

	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

var _ http.Handler = &Handler{}
