package common

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpCtx "github.com/bornholm/intake/internal/http/context"
	"github.com/pkg/errors"
)

func TestHandleError(t *testing.T) {
	testCases := []struct {
		Name          string
		Err           error
		ExpectStatus  int
		ExpectMessage string
	}{
		{
			Name:          "unexpected error",
			Err:           errors.New("boom"),
			ExpectStatus:  http.StatusInternalServerError,
			ExpectMessage: http.StatusText(http.StatusInternalServerError),
		},
		{
			Name:          "user facing error",
			Err:           errors.WithStack(NewError("missing patient", "This page does not exist.", http.StatusNotFound)),
			ExpectStatus:  http.StatusNotFound,
			ExpectMessage: "This page does not exist.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/patients/1", nil)
			ctx := httpCtx.SetBaseURL(req.Context(), "/")
			ctx = httpCtx.SetCurrentURL(ctx, req.URL)

			rec := httptest.NewRecorder()
			HandleError(rec, req.WithContext(ctx), tc.Err)

			if rec.Code != tc.ExpectStatus {
				t.Errorf("expected status %d, got %d", tc.ExpectStatus, rec.Code)
			}

			body := rec.Body.String()

			if !strings.Contains(body, tc.ExpectMessage) {
				t.Errorf("expected message %q in:\n%s", tc.ExpectMessage, body)
			}

			if strings.Contains(body, "missing patient") {
				t.Error("expected internal error message not to be exposed")
			}

			if !strings.Contains(body, `href="/"`) {
				t.Errorf("expected a link back to home in:\n%s", body)
			}
		})
	}
}
