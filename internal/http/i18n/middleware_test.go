package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/intake/internal/locale"
)

func TestMiddleware(t *testing.T) {
	testCases := []struct {
		Name           string
		Target         string
		AcceptLanguage string
		ExpectLanguage string
	}{
		{
			Name:           "default language",
			Target:         "/",
			ExpectLanguage: "en",
		},
		{
			Name:           "accept language header",
			Target:         "/",
			AcceptLanguage: "fr-FR,fr;q=0.9,en;q=0.8",
			ExpectLanguage: "fr",
		},
		{
			Name:           "query parameter overrides header",
			Target:         "/?lang=en",
			AcceptLanguage: "fr",
			ExpectLanguage: "en",
		},
		{
			Name:           "unknown language falls back to default",
			Target:         "/?lang=xx",
			ExpectLanguage: "en",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var language string

			handler := Middleware("en")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				language = locale.Language(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, tc.Target, nil)
			if tc.AcceptLanguage != "" {
				req.Header.Set("Accept-Language", tc.AcceptLanguage)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			if language != tc.ExpectLanguage {
				t.Errorf("expected language %q, got %q", tc.ExpectLanguage, language)
			}
		})
	}
}
