package component

import (
	"context"

	"github.com/a-h/templ"
	httpCtx "github.com/bornholm/intake/internal/http/context"
	httpURL "github.com/bornholm/intake/internal/http/url"
)

var (
	WithPath      = httpURL.WithPath
	WithoutValues = httpURL.WithoutValues
	WithValues    = httpURL.WithValues
)

func BaseURL(ctx context.Context, funcs ...httpURL.MutationFunc) templ.SafeURL {
	baseURL := httpCtx.BaseURL(ctx)
	mutated := httpURL.Mutate(baseURL, funcs...)
	return templ.SafeURL(mutated.String())
}

func CurrentURL(ctx context.Context, funcs ...httpURL.MutationFunc) templ.SafeURL {
	currentURL := clone(httpCtx.CurrentURL(ctx))
	mutated := httpURL.Mutate(currentURL, funcs...)
	return templ.SafeURL(mutated.String())
}

func MatchPath(ctx context.Context, path string) bool {
	currentURL := httpCtx.CurrentURL(ctx)
	return currentURL.Path == path
}

func clone[T any](v *T) *T {
	copy := *v
	return &copy
}
