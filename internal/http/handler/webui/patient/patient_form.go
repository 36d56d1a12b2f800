package patient

import (
	"context"

	"github.com/bornholm/intake/internal/http/handler/webui/common/form"
	"github.com/bornholm/intake/internal/http/handler/webui/patient/component"
	"github.com/bornholm/intake/internal/locale"
	"github.com/bornholm/intake/internal/store"
)

const (
	fieldName                   = "name"
	fieldEmail                  = "email"
	fieldPhone                  = "phone"
	fieldBirthDate              = "birthDate"
	fieldGender                 = "gender"
	fieldAddress                = "address"
	fieldOccupation             = "occupation"
	fieldEmergencyContactName   = "emergencyContactName"
	fieldEmergencyContactNumber = "emergencyContactNumber"
	fieldPrimaryPhysician       = "primaryPhysician"
	fieldInsuranceProvider      = "insuranceProvider"
	fieldInsurancePolicy        = "insurancePolicy"
	fieldAllergies              = "allergies"
	fieldCurrentMedication      = "currentMedication"
	fieldPastMedicalHistory     = "pastMedicalHistory"
	fieldPreferredAppointment   = "preferredAppointment"
	fieldIdentificationType     = "identificationType"
	fieldIdentificationNumber   = "identificationNumber"
	fieldIdentificationDocument = "identificationDocument"
	fieldTreatmentConsent       = "treatmentConsent"
	fieldDisclosureConsent      = "disclosureConsent"
	fieldPrivacyConsent         = "privacyConsent"
)

const appointmentDateFormat = "MM/dd/yyyy - h:mm aa"

var physicians = []string{
	"John Green",
	"Leila Cameron",
	"David Livingston",
	"Evan Peter",
	"Jane Powell",
	"Alex Ramirez",
	"Jasmine Lee",
	"Alyana Cruz",
	"Hardik Sharma",
}

var identificationTypes = []string{
	"birth_certificate",
	"driver_license",
	"insurance_card",
	"military_id",
	"national_id",
	"passport",
	"residence_permit",
	"student_id",
	"voter_id",
}

var documentMimeTypes = []string{"image/png", "image/jpeg", "application/pdf"}

// NewPatientForm creates the registration form, labels being translated
// with the locale of ctx
func NewPatientForm(ctx context.Context, opts *Options, validationURL string) *form.Form {
	t := func(key string) string {
		return locale.T(ctx, "patient.fields."+key)
	}

	required := func(rules ...form.ValidationRule) []form.ValidationRule {
		return append([]form.ValidationRule{form.RequiredRule{}}, rules...)
	}

	genderOptions := []form.SelectOption{
		{Value: string(store.GenderMale), Label: t("gender_male")},
		{Value: string(store.GenderFemale), Label: t("gender_female")},
		{Value: string(store.GenderOther), Label: t("gender_other")},
	}

	physicianOptions := make([]form.SelectOption, 0, len(physicians))
	for _, p := range physicians {
		physicianOptions = append(physicianOptions, form.SelectOption{Value: p, Label: p})
	}

	identificationOptions := make([]form.SelectOption, 0, len(identificationTypes))
	for _, it := range identificationTypes {
		identificationOptions = append(identificationOptions, form.SelectOption{
			Value: it,
			Label: locale.T(ctx, "patient.identification_types."+it),
		})
	}

	fields := []form.Field{
		{
			Kind:        form.KindText,
			Name:        fieldName,
			Label:       t("name"),
			Placeholder: t("name_placeholder"),
			IconSrc:     "/assets/icons/user.svg",
			IconAlt:     "user",
			Required:    true,
			Validation:  required(form.MinLengthRule{MinLength: 2}, form.MaxLengthRule{MaxLength: 50}),
			Attributes:  map[string]any{"autocomplete": "name"},
		},
		{
			Kind:        form.KindText,
			Name:        fieldEmail,
			Label:       t("email"),
			Placeholder: t("email_placeholder"),
			IconSrc:     "/assets/icons/email.svg",
			IconAlt:     "email",
			Required:    true,
			Validation:  required(form.EmailRule{}),
			Attributes:  map[string]any{"type": "email", "autocomplete": "email"},
		},
		{
			Kind:       form.KindPhoneNumber,
			Name:       fieldPhone,
			Label:      t("phone"),
			Required:   true,
			Validation: required(form.PhoneNumberRule{Region: opts.PhoneRegion}),
		},
		{
			Kind:       form.KindDate,
			Name:       fieldBirthDate,
			Label:      t("birth_date"),
			Required:   true,
			Validation: required(form.DateRule{}),
		},
		{
			Kind:       form.KindCustom,
			Name:       fieldGender,
			Label:      t("gender"),
			Options:    genderOptions,
			Render:     component.RadioGroup(genderOptions),
			Required:   true,
			Validation: required(form.OneOfRule{}),
		},
		{
			Kind:        form.KindText,
			Name:        fieldAddress,
			Label:       t("address"),
			Placeholder: t("address_placeholder"),
			Required:    true,
			Validation:  required(form.MinLengthRule{MinLength: 5}, form.MaxLengthRule{MaxLength: 500}),
		},
		{
			Kind:        form.KindText,
			Name:        fieldOccupation,
			Label:       t("occupation"),
			Placeholder: t("occupation_placeholder"),
			Required:    true,
			Validation:  required(form.MinLengthRule{MinLength: 2}, form.MaxLengthRule{MaxLength: 500}),
		},
		{
			Kind:        form.KindText,
			Name:        fieldEmergencyContactName,
			Label:       t("emergency_contact_name"),
			Placeholder: t("emergency_contact_name_placeholder"),
			Required:    true,
			Validation:  required(form.MinLengthRule{MinLength: 2}, form.MaxLengthRule{MaxLength: 50}),
		},
		{
			Kind:       form.KindPhoneNumber,
			Name:       fieldEmergencyContactNumber,
			Label:      t("emergency_contact_number"),
			Required:   true,
			Validation: required(form.PhoneNumberRule{Region: opts.PhoneRegion}),
		},
		{
			Kind:        form.KindSelect,
			Name:        fieldPrimaryPhysician,
			Label:       t("primary_physician"),
			Placeholder: t("primary_physician_placeholder"),
			Options:     physicianOptions,
			Required:    true,
			Validation:  required(form.OneOfRule{}),
		},
		{
			Kind:        form.KindText,
			Name:        fieldInsuranceProvider,
			Label:       t("insurance_provider"),
			Placeholder: t("insurance_provider_placeholder"),
			Required:    true,
			Validation:  required(form.MinLengthRule{MinLength: 2}, form.MaxLengthRule{MaxLength: 50}),
		},
		{
			Kind:        form.KindText,
			Name:        fieldInsurancePolicy,
			Label:       t("insurance_policy"),
			Placeholder: t("insurance_policy_placeholder"),
			Required:    true,
			Validation:  required(form.MinLengthRule{MinLength: 2}, form.MaxLengthRule{MaxLength: 50}),
		},
		{
			Kind:        form.KindMultilineText,
			Name:        fieldAllergies,
			Label:       t("allergies"),
			Placeholder: t("allergies_placeholder"),
			Validation:  []form.ValidationRule{form.MaxLengthRule{MaxLength: 1000}},
		},
		{
			Kind:        form.KindMultilineText,
			Name:        fieldCurrentMedication,
			Label:       t("current_medication"),
			Placeholder: t("current_medication_placeholder"),
			Validation:  []form.ValidationRule{form.MaxLengthRule{MaxLength: 1000}},
		},
		{
			Kind:        form.KindMultilineText,
			Name:        fieldPastMedicalHistory,
			Label:       t("past_medical_history"),
			Placeholder: t("past_medical_history_placeholder"),
			Validation:  []form.ValidationRule{form.MaxLengthRule{MaxLength: 1000}},
		},
		{
			Kind:       form.KindDate,
			Name:       fieldPreferredAppointment,
			Label:      t("preferred_appointment"),
			DateFormat: appointmentDateFormat,
			ShowTime:   true,
			Validation: []form.ValidationRule{form.DateRule{}},
		},
		{
			Kind:        form.KindSelect,
			Name:        fieldIdentificationType,
			Label:       t("identification_type"),
			Placeholder: t("identification_type_placeholder"),
			Options:     identificationOptions,
			Validation:  []form.ValidationRule{form.OneOfRule{}},
		},
		{
			Kind:        form.KindText,
			Name:        fieldIdentificationNumber,
			Label:       t("identification_number"),
			Placeholder: t("identification_number_placeholder"),
			Validation:  []form.ValidationRule{form.MaxLengthRule{MaxLength: 50}},
		},
		{
			Kind:        form.KindCustom,
			Name:        fieldIdentificationDocument,
			Label:       t("identification_document"),
			Description: t("identification_document_description"),
			Multipart:   true,
			Render:      component.FileUpload(documentMimeTypes),
			Validation: []form.ValidationRule{
				form.FileRule{MaxSize: opts.MaxUploadSize, MimeTypes: documentMimeTypes},
			},
		},
		{
			Kind:       form.KindCheckbox,
			Name:       fieldTreatmentConsent,
			Label:      t("treatment_consent"),
			Validation: []form.ValidationRule{form.CheckedRule{}},
		},
		{
			Kind:       form.KindCheckbox,
			Name:       fieldDisclosureConsent,
			Label:      t("disclosure_consent"),
			Validation: []form.ValidationRule{form.CheckedRule{}},
		},
		{
			Kind:       form.KindCheckbox,
			Name:       fieldPrivacyConsent,
			Label:      t("privacy_consent"),
			Validation: []form.ValidationRule{form.CheckedRule{}},
		},
	}

	return form.New(
		fields,
		form.WithDefaultRenderer(&form.DefaultFieldRenderer{PhoneRegion: opts.PhoneRegion}),
		form.WithMaxMemory(opts.MaxUploadSize),
		form.WithValidationURL(validationURL, opts.ValidateOnBlur),
	)
}

// registerSections lays the registration form out
func registerSections(ctx context.Context) []component.FormSection {
	return []component.FormSection{
		{
			Title: locale.T(ctx, "patient.register.personal"),
			Rows: [][]string{
				{fieldName},
				{fieldEmail, fieldPhone},
				{fieldBirthDate, fieldGender},
				{fieldAddress, fieldOccupation},
				{fieldEmergencyContactName, fieldEmergencyContactNumber},
			},
		},
		{
			Title: locale.T(ctx, "patient.register.medical"),
			Rows: [][]string{
				{fieldPrimaryPhysician},
				{fieldInsuranceProvider, fieldInsurancePolicy},
				{fieldAllergies, fieldCurrentMedication},
				{fieldPastMedicalHistory},
				{fieldPreferredAppointment},
			},
		},
		{
			Title: locale.T(ctx, "patient.register.identification"),
			Rows: [][]string{
				{fieldIdentificationType},
				{fieldIdentificationNumber},
				{fieldIdentificationDocument},
			},
		},
		{
			Title: locale.T(ctx, "patient.register.consent"),
			Rows: [][]string{
				{fieldTreatmentConsent},
				{fieldDisclosureConsent},
				{fieldPrivacyConsent},
			},
		},
	}
}
