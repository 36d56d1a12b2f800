package component

import (
	"context"

	"github.com/a-h/templ"
	"github.com/bornholm/intake/internal/http/handler/webui/common/markup"
	"github.com/bornholm/intake/internal/locale"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

const langQueryParam = "lang"

type language struct {
	Code  string
	Label string
}

var languages = []language{
	{Code: "en", Label: "English"},
	{Code: "fr", Label: "Français"},
}

type PageVModel struct {
	Title string
	Flash string
}

// Page wraps body in the html document shared by every page
func Page(vmodel PageVModel, body templ.Component) templ.Component {
	return markup.Component(func(ctx context.Context, w *markup.Writer) {
		w.Raw("<!DOCTYPE html>")
		w.Open("html", markup.A("lang", locale.Language(ctx)))

		w.Open("head")
		w.Void("meta", markup.A("charset", "utf-8"))
		w.Void("meta", markup.A("name", "viewport"), markup.A("content", "width=device-width, initial-scale=1"))
		w.Element("title", vmodel.Title)
		w.Void("link", markup.A("rel", "stylesheet"), markup.A("href", string(BaseURL(ctx, WithPath("/assets/style.css")))))
		w.Raw(`<script src="` + htmxSrc + `" defer></script>`)
		w.Close("head")

		w.Open("body")
		header(ctx, w)
		w.Open("main", markup.A("class", "container"))

		if vmodel.Flash != "" {
			w.Element("div", vmodel.Flash, markup.A("class", "flash"), markup.A("role", "status"))
		}

		w.Component(ctx, body)

		w.Close("main")
		w.Close("body")
		w.Close("html")
	})
}

func header(ctx context.Context, w *markup.Writer) {
	w.Open("header", markup.A("class", "container header"))

	w.Open("nav")
	newPatientPath := "/patients/new"
	w.Element("a", locale.T(ctx, "layout.new_patient"),
		markup.A("href", string(BaseURL(ctx, WithPath(newPatientPath)))),
		markup.Opt("aria-current", ariaCurrent(MatchPath(ctx, newPatientPath))),
	)
	w.Close("nav")

	current := locale.Language(ctx)

	w.Open("ul", markup.A("class", "languages"), markup.A("aria-label", locale.T(ctx, "layout.languages")))
	for _, l := range languages {
		w.Open("li")
		w.Element("a", l.Label,
			markup.A("href", string(CurrentURL(ctx, WithoutValues(langQueryParam, "*"), WithValues(langQueryParam, l.Code)))),
			markup.A("hreflang", l.Code),
			markup.Opt("aria-current", ariaCurrent(l.Code == current)),
		)
		w.Close("li")
	}
	w.Close("ul")

	w.Close("header")
}

func ariaCurrent(active bool) string {
	if active {
		return "page"
	}
	return ""
}
