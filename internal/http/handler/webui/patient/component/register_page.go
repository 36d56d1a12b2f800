package component

import (
	"context"
	"io"

	"github.com/a-h/templ"
	commonComp "github.com/bornholm/intake/internal/http/handler/webui/common/component"
	"github.com/bornholm/intake/internal/http/handler/webui/common/form"
	"github.com/bornholm/intake/internal/http/handler/webui/common/markup"
	"github.com/bornholm/intake/internal/locale"
)

// FormSection groups rows of field names under a title
type FormSection struct {
	Title string
	Rows  [][]string
}

type RegisterPageVModel struct {
	Form     *form.Form
	Sections []FormSection
	Action   templ.SafeURL
}

func RegisterPage(vmodel RegisterPageVModel) templ.Component {
	body := markup.Component(func(ctx context.Context, w *markup.Writer) {
		w.Open("header")
		w.Element("h1", locale.T(ctx, "patient.register.title"))
		w.Element("p", locale.T(ctx, "patient.register.intro"))
		w.Close("header")

		w.Open("form",
			markup.A("method", "post"),
			markup.A("action", string(vmodel.Action)),
			markup.A("enctype", "multipart/form-data"),
			markup.Flag("novalidate", true),
		)

		for _, section := range vmodel.Sections {
			w.Open("section", markup.A("class", "form-section"))
			w.Element("h2", section.Title)

			for _, row := range section.Rows {
				w.Open("div", markup.A("class", "form-row"))
				for _, name := range row {
					field, err := vmodel.Form.RenderField(name)
					if err != nil {
						w.Fail(err)
						return
					}
					w.Component(ctx, field)
				}
				w.Close("div")
			}

			w.Close("section")
		}

		w.Element("button", locale.T(ctx, "patient.register.submit"), markup.A("type", "submit"))
		w.Close("form")
	})

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return commonComp.Page(commonComp.PageVModel{Title: locale.T(ctx, "patient.register.title")}, body).Render(ctx, w)
	})
}
