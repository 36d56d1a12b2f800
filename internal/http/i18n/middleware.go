package i18n

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/intake/internal/slogx"
	"github.com/invopop/ctxi18n"
)

// LangQueryParam overrides the Accept-Language header when present
const LangQueryParam = "lang"

func Middleware(defaultLang string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := defaultLang

			ctx := r.Context()

			if queryLang := r.URL.Query().Get(LangQueryParam); queryLang != "" {
				lang = queryLang
			} else if acceptLanguage := r.Header.Get("Accept-Language"); acceptLanguage != "" {
				lang = acceptLanguage
			}

			localized, err := ctxi18n.WithLocale(ctx, lang)
			if err != nil {
				slog.DebugContext(ctx, "could not match requested locale, using default", slog.String("requested", lang), slogx.Error(err))

				localized, err = ctxi18n.WithLocale(ctx, defaultLang)
				if err != nil {
					slog.WarnContext(ctx, "could not set locale", slogx.Error(err))
					localized = ctx
				}
			}

			next.ServeHTTP(w, r.WithContext(localized))
		})

		return http.HandlerFunc(fn)
	}
}
