package component

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/bornholm/intake/internal/http/handler/webui/common/markup"
	"github.com/bornholm/intake/internal/locale"
)

type LinkItem struct {
	URL   templ.SafeURL
	Label string
}

type ErrorPageVModel struct {
	Message string
	Links   []LinkItem
}

func ErrorPage(vmodel ErrorPageVModel) templ.Component {
	body := markup.Component(func(ctx context.Context, w *markup.Writer) {
		w.Open("section", markup.A("class", "error-page"))
		w.Element("h1", locale.T(ctx, "error.title"))
		w.Element("p", vmodel.Message, markup.A("class", "error-message"))

		links := vmodel.Links
		if len(links) == 0 {
			links = []LinkItem{{URL: BaseURL(ctx, WithPath("/")), Label: locale.T(ctx, "error.back")}}
		}

		w.Open("nav")
		for _, l := range links {
			w.Element("a", l.Label, markup.A("href", string(l.URL)))
		}
		w.Close("nav")

		w.Close("section")
	})

	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		return Page(PageVModel{Title: locale.T(ctx, "error.title")}, body).Render(ctx, out)
	})
}
