package patient

import (
	"strings"
	"time"

	"github.com/bornholm/intake/internal/http/handler/webui/common/form"
	"github.com/bornholm/intake/internal/store"
	"github.com/pkg/errors"
)

// patientFromForm maps a validated registration form onto a patient
func patientFromForm(f *form.Form, reference string, phoneRegion string) (*store.Patient, error) {
	value := func(name string) string {
		return strings.TrimSpace(f.Values[name])
	}

	phone, err := form.NormalizePhoneNumber(value(fieldPhone), phoneRegion)
	if err != nil {
		return nil, errors.Wrap(err, "invalid phone number")
	}

	emergencyContactNumber, err := form.NormalizePhoneNumber(value(fieldEmergencyContactNumber), phoneRegion)
	if err != nil {
		return nil, errors.Wrap(err, "invalid emergency contact number")
	}

	birthDate, err := form.ParseDate(value(fieldBirthDate), form.DefaultDateFormat)
	if err != nil {
		return nil, errors.Wrap(err, "invalid birth date")
	}

	var preferredAppointment *time.Time
	if raw := value(fieldPreferredAppointment); raw != "" {
		appointment, err := form.ParseDate(raw, appointmentDateFormat)
		if err != nil {
			return nil, errors.Wrap(err, "invalid preferred appointment")
		}
		preferredAppointment = &appointment
	}

	return &store.Patient{
		Reference:              reference,
		Name:                   value(fieldName),
		Email:                  value(fieldEmail),
		Phone:                  phone,
		BirthDate:              birthDate,
		Gender:                 store.Gender(value(fieldGender)),
		Address:                value(fieldAddress),
		Occupation:             value(fieldOccupation),
		EmergencyContactName:   value(fieldEmergencyContactName),
		EmergencyContactNumber: emergencyContactNumber,
		PrimaryPhysician:       value(fieldPrimaryPhysician),
		InsuranceProvider:      value(fieldInsuranceProvider),
		InsurancePolicy:        value(fieldInsurancePolicy),
		Allergies:              value(fieldAllergies),
		CurrentMedication:      value(fieldCurrentMedication),
		PastMedicalHistory:     value(fieldPastMedicalHistory),
		PreferredAppointment:   preferredAppointment,
		IdentificationType:     value(fieldIdentificationType),
		IdentificationNumber:   value(fieldIdentificationNumber),
		TreatmentConsent:       form.IsChecked(value(fieldTreatmentConsent)),
		DisclosureConsent:      form.IsChecked(value(fieldDisclosureConsent)),
		PrivacyConsent:         form.IsChecked(value(fieldPrivacyConsent)),
	}, nil
}
