package store

import (
	"time"

	"gorm.io/gorm"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Patient struct {
	gorm.Model

	// Reference is the public identifier handed to the patient
	Reference string `gorm:"uniqueIndex"`

	Name       string `gorm:"index"`
	Email      string `gorm:"index"`
	Phone      string
	BirthDate  time.Time
	Gender     Gender
	Address    string
	Occupation string

	EmergencyContactName   string
	EmergencyContactNumber string

	PrimaryPhysician   string
	InsuranceProvider  string
	InsurancePolicy    string
	Allergies          string `gorm:"type:text"`
	CurrentMedication  string `gorm:"type:text"`
	PastMedicalHistory string `gorm:"type:text"`

	PreferredAppointment *time.Time

	IdentificationType     string
	IdentificationNumber   string
	IdentificationDocument *PatientDocument `gorm:"constraint:OnDelete:CASCADE;"`

	TreatmentConsent  bool
	DisclosureConsent bool
	PrivacyConsent    bool
}

type PatientDocument struct {
	gorm.Model

	PatientID uint `gorm:"uniqueIndex"`

	Filename string
	FilePath string
	FileSize int64
	MimeType string
	Checksum string
}
