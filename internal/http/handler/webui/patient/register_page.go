package patient

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/intake/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/intake/internal/http/handler/webui/common/component"
	"github.com/bornholm/intake/internal/http/handler/webui/common/form"
	"github.com/bornholm/intake/internal/http/handler/webui/patient/component"
	"github.com/bornholm/intake/internal/locale"
	"github.com/bornholm/intake/internal/slogx"
	"github.com/bornholm/intake/internal/store"
	patientRepository "github.com/bornholm/intake/internal/store/repository/patient"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

func (h *Handler) getRegisterPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vmodel, err := h.fillRegisterPageViewModel(r, h.newForm(ctx))
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	page := component.RegisterPage(*vmodel)
	templ.Handler(page).ServeHTTP(w, r)
}

func (h *Handler) handleRegisterSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	patientForm := h.newForm(ctx)

	if err := patientForm.Handle(r); err != nil {
		h.metrics.submissions.WithLabelValues(outcomeFailed).Inc()
		common.HandleError(w, r, common.NewError(err.Error(), locale.T(ctx, "error.invalid_form"), http.StatusBadRequest))
		return
	}

	if !patientForm.IsValid(ctx) {
		h.metrics.submissions.WithLabelValues(outcomeInvalid).Inc()

		h.logger.DebugContext(ctx, "invalid patient registration", slog.Any("errors", patientForm.Errors))

		vmodel, err := h.fillRegisterPageViewModel(r, patientForm)
		if err != nil {
			common.HandleError(w, r, errors.WithStack(err))
			return
		}

		page := component.RegisterPage(*vmodel)
		templ.Handler(page, templ.WithStatus(http.StatusUnprocessableEntity)).ServeHTTP(w, r)
		return
	}

	patient, err := h.registerPatient(ctx, patientForm)
	if err != nil {
		h.metrics.submissions.WithLabelValues(outcomeFailed).Inc()
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	h.metrics.submissions.WithLabelValues(outcomeRegistered).Inc()

	h.logger.InfoContext(ctx, "registered patient", slog.String("reference", patient.Reference), slog.Uint64("id", uint64(patient.ID)))

	if err := h.addFlash(w, r, locale.T(ctx, "patient.summary.registered")); err != nil {
		h.logger.WarnContext(ctx, "could not save flash message", slogx.Error(err))
	}

	http.Redirect(w, r, string(summaryURL(ctx, patient.Reference)), http.StatusSeeOther)
}

// validateField validates a single field of the submitted form and
// responds with its re-rendered form item
func (h *Handler) validateField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fieldName := r.URL.Query().Get(form.FieldQueryParam)

	patientForm := h.newForm(ctx)

	if _, exists := patientForm.Field(fieldName); !exists {
		common.HandleError(w, r, common.NewError("unknown field '"+fieldName+"'", http.StatusText(http.StatusBadRequest), http.StatusBadRequest))
		return
	}

	if err := patientForm.Handle(r); err != nil {
		common.HandleError(w, r, common.NewError(err.Error(), locale.T(ctx, "error.invalid_form"), http.StatusBadRequest))
		return
	}

	result := resultValid
	if !patientForm.ValidateField(ctx, fieldName) {
		result = resultInvalid
	}

	h.metrics.fieldValidations.WithLabelValues(fieldName, result).Inc()

	item, err := patientForm.RenderField(fieldName)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	templ.Handler(item).ServeHTTP(w, r)
}

func (h *Handler) registerPatient(ctx context.Context, patientForm *form.Form) (*store.Patient, error) {
	reference := xid.New().String()

	ctx = slogx.WithAttrs(ctx, slog.String("reference", reference))

	patient, err := patientFromForm(patientForm, reference, h.opts.PhoneRegion)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if headers := patientForm.Files[fieldIdentificationDocument]; len(headers) > 0 {
		header := headers[0]

		file, err := header.Open()
		if err != nil {
			return nil, errors.Wrap(err, "could not open identification document")
		}
		defer file.Close()

		stored, err := h.fileStorage.StorePatientDocument(reference, header.Filename, file)
		if err != nil {
			return nil, errors.Wrap(err, "could not store identification document")
		}

		patient.IdentificationDocument = &store.PatientDocument{
			Filename: stored.OriginalName,
			FilePath: stored.StoredPath,
			FileSize: stored.Size,
			MimeType: stored.MimeType,
			Checksum: stored.Checksum,
		}
	}

	repo := patientRepository.NewRepository(h.store)

	if err := repo.Create(ctx, patient); err != nil {
		if patient.IdentificationDocument != nil {
			if err := h.fileStorage.DeletePatient(reference); err != nil {
				h.logger.ErrorContext(ctx, "could not cleanup patient documents", slogx.Error(err))
			}
		}

		return nil, errors.Wrap(err, "could not create patient")
	}

	return patient, nil
}

func (h *Handler) fillRegisterPageViewModel(r *http.Request, patientForm *form.Form) (*component.RegisterPageVModel, error) {
	vmodel := &component.RegisterPageVModel{
		Form: patientForm,
	}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillRegisterPageFormVModel,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillRegisterPageFormVModel(ctx context.Context, vmodel *component.RegisterPageVModel, r *http.Request) error {
	vmodel.Sections = registerSections(ctx)
	vmodel.Action = registerURL(ctx)

	for _, section := range vmodel.Sections {
		for _, row := range section.Rows {
			for _, name := range row {
				if _, exists := vmodel.Form.Field(name); !exists {
					return errors.Errorf("section '%s' references unknown field '%s'", section.Title, name)
				}
			}
		}
	}

	return nil
}

func (h *Handler) newForm(ctx context.Context) *form.Form {
	return NewPatientForm(ctx, h.opts, string(commonComp.BaseURL(ctx, commonComp.WithPath("/patients/new/validate"))))
}

func registerURL(ctx context.Context) templ.SafeURL {
	return commonComp.BaseURL(ctx, commonComp.WithPath("/patients/new"))
}

func summaryURL(ctx context.Context, reference string) templ.SafeURL {
	return commonComp.BaseURL(ctx, commonComp.WithPath("/patients", reference))
}
