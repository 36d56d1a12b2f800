package component

import (
	"context"
	"io"

	"github.com/a-h/templ"
	commonComp "github.com/bornholm/intake/internal/http/handler/webui/common/component"
	"github.com/bornholm/intake/internal/http/handler/webui/common/markup"
	"github.com/bornholm/intake/internal/locale"
	"github.com/bornholm/intake/internal/store"
)

const registeredAtLayout = "2006-01-02 15:04"

type SummaryPageVModel struct {
	Patient *store.Patient
	Flash   string
}

func SummaryPage(vmodel SummaryPageVModel) templ.Component {
	body := markup.Component(func(ctx context.Context, w *markup.Writer) {
		patient := vmodel.Patient

		w.Element("h1", locale.T(ctx, "patient.summary.title"))

		w.Open("dl", markup.A("class", "summary"))
		entry := func(label, value string) {
			w.Element("dt", label)
			w.Element("dd", value)
		}

		entry(locale.T(ctx, "patient.summary.reference"), patient.Reference)
		entry(locale.T(ctx, "patient.fields.name"), patient.Name)
		entry(locale.T(ctx, "patient.fields.email"), patient.Email)
		entry(locale.T(ctx, "patient.fields.phone"), patient.Phone)
		entry(locale.T(ctx, "patient.fields.primary_physician"), patient.PrimaryPhysician)
		if patient.IdentificationDocument != nil {
			entry(locale.T(ctx, "patient.summary.document"), patient.IdentificationDocument.Filename)
		}
		entry(locale.T(ctx, "patient.summary.registered_at"), patient.CreatedAt.Format(registeredAtLayout))
		w.Close("dl")

		w.Element("a", locale.T(ctx, "patient.summary.back"),
			markup.A("href", string(commonComp.BaseURL(ctx, commonComp.WithPath("/patients/new")))),
		)
	})

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		page := commonComp.PageVModel{
			Title: locale.T(ctx, "patient.summary.title"),
			Flash: vmodel.Flash,
		}
		return commonComp.Page(page, body).Render(ctx, w)
	})
}
