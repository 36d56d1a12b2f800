package common

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAssetsHandler(t *testing.T) {
	h := NewHandler()

	for _, path := range []string{"/style.css", "/icons/calendar.svg", "/icons/user.svg", "/icons/email.svg"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusOK {
			t.Errorf("expected %s to be served, got status %d", path, rec.Code)
		}
	}
}
