package webui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/bornholm/intake/internal/file"
	httpCtx "github.com/bornholm/intake/internal/http/context"
	"github.com/bornholm/intake/internal/http/handler/webui/patient"
	"github.com/bornholm/intake/internal/slogx"
	"github.com/bornholm/intake/internal/store"
	"github.com/glebarez/sqlite"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestHandler(t *testing.T, filesDir string) *Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.sqlite")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open database: %v", err)
	}

	testLogger := slogx.NewTestLogger(t)

	return NewHandler(
		store.New(db),
		file.NewStorage(filesDir, testLogger),
		sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")),
		testLogger,
		WithPatientOptions(patient.WithRegisterer(prometheus.NewRegistry())),
	)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	ctx := httpCtx.SetBaseURL(req.Context(), "/")
	ctx = httpCtx.SetCurrentURL(ctx, req.URL)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(ctx))

	return rec
}

func TestHealthCheck(t *testing.T) {
	testCases := []struct {
		Name         string
		FilesDir     func(t *testing.T) string
		ExpectStatus int
		ExpectHealth string
	}{
		{
			Name:         "healthy",
			FilesDir:     func(t *testing.T) string { return t.TempDir() },
			ExpectStatus: http.StatusOK,
			ExpectHealth: "healthy",
		},
		{
			Name:         "missing file storage",
			FilesDir:     func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing") },
			ExpectStatus: http.StatusServiceUnavailable,
			ExpectHealth: "unhealthy",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			h := newTestHandler(t, tc.FilesDir(t))

			rec := serve(h, httptest.NewRequest(http.MethodGet, "/health", nil))

			if rec.Code != tc.ExpectStatus {
				t.Fatalf("expected status %d, got %d", tc.ExpectStatus, rec.Code)
			}

			var payload map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("could not decode health payload: %v", err)
			}

			if payload["status"] != tc.ExpectHealth {
				t.Errorf("expected status %q, got %q", tc.ExpectHealth, payload["status"])
			}
		})
	}
}

func TestPatientModuleIsMounted(t *testing.T) {
	h := newTestHandler(t, t.TempDir())

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/patients/new", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/unknown/page", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}
