package locale

import (
	"context"
	"embed"

	"github.com/invopop/ctxi18n"
	"github.com/invopop/ctxi18n/i18n"
	"github.com/pkg/errors"
)

const DefaultLanguage = "en"

//go:embed i18n/*.yml
var translations embed.FS

func init() {
	if err := ctxi18n.Load(translations); err != nil {
		panic(errors.Wrap(err, "could not load translations"))
	}
}

// M carries interpolation values for T
type M = i18n.M

// T translates key with the locale attached to ctx, falling back to the
// default language when the context carries none.
func T(ctx context.Context, key string, args ...any) string {
	if ctxi18n.Locale(ctx) == nil {
		localized, err := ctxi18n.WithLocale(ctx, DefaultLanguage)
		if err == nil {
			ctx = localized
		}
	}

	return i18n.T(ctx, key, args...)
}

// Language returns the code of the locale attached to ctx
func Language(ctx context.Context) string {
	if l := ctxi18n.Locale(ctx); l != nil {
		return string(l.Code())
	}

	return DefaultLanguage
}
