package patient

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/intake/internal/http/handler/webui/common"
	"github.com/bornholm/intake/internal/http/handler/webui/patient/component"
	"github.com/bornholm/intake/internal/locale"
	"github.com/bornholm/intake/internal/slogx"
	patientRepository "github.com/bornholm/intake/internal/store/repository/patient"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func (h *Handler) getSummaryPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reference := r.PathValue("reference")

	repo := patientRepository.NewRepository(h.store)

	patient, err := repo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.HandleError(w, r, common.NewError(err.Error(), locale.T(ctx, "error.not_found"), http.StatusNotFound))
			return
		}

		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	flash, err := h.popFlash(w, r)
	if err != nil {
		h.logger.WarnContext(ctx, "could not read flash message", slogx.Error(err))
	}

	vmodel := component.SummaryPageVModel{
		Patient: patient,
		Flash:   flash,
	}

	page := component.SummaryPage(vmodel)
	templ.Handler(page).ServeHTTP(w, r)
}
