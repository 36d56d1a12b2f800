package patient

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/intake/internal/file"
	"github.com/bornholm/intake/internal/http/handler/webui/common"
	"github.com/bornholm/intake/internal/locale"
	"github.com/bornholm/intake/internal/store"
	"github.com/gorilla/sessions"
)

const sessionName = "intake"

type Handler struct {
	mux         *http.ServeMux
	store       *store.Store
	fileStorage *file.Storage
	sessions    sessions.Store
	metrics     *metrics
	opts        *Options
	logger      *slog.Logger
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(store *store.Store, fileStorage *file.Storage, sessionStore sessions.Store, logger *slog.Logger, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux:         http.NewServeMux(),
		store:       store,
		fileStorage: fileStorage,
		sessions:    sessionStore,
		metrics:     newMetrics(opts.Registerer),
		opts:        opts,
		logger:      logger.With("component", "patient-handler"),
	}

	h.mux.HandleFunc("GET /{$}", h.redirectToRegisterPage)
	h.mux.HandleFunc("GET /patients/new", h.getRegisterPage)
	h.mux.HandleFunc("POST /patients/new", h.handleRegisterSubmission)
	h.mux.HandleFunc("POST /patients/new/validate", h.validateField)
	h.mux.HandleFunc("/patients/new/validate", h.postOnly)
	h.mux.HandleFunc("GET /patients/{reference}", h.getSummaryPage)
	h.mux.HandleFunc("/", h.getNotFoundPage)

	return h
}

func (h *Handler) redirectToRegisterPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, string(registerURL(r.Context())), http.StatusSeeOther)
}

func (h *Handler) getNotFoundPage(w http.ResponseWriter, r *http.Request) {
	common.HandleError(w, r, common.NewError("page not found", locale.T(r.Context(), "error.not_found"), http.StatusNotFound))
}

func (h *Handler) postOnly(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	common.HandleError(w, r, common.NewError("method not allowed", locale.T(r.Context(), "error.method_not_allowed"), http.StatusMethodNotAllowed))
}

var _ http.Handler = &Handler{}
