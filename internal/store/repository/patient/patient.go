package patient

import (
	"context"

	"github.com/bornholm/intake/internal/store"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Create creates a new patient, with its identification document if any
func (r *Repository) Create(ctx context.Context, patient *store.Patient) error {
	return r.store.WithRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(patient).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, store.CodeBusy, store.CodeLocked)
}

// GetByReference retrieves a patient by its public reference
func (r *Repository) GetByReference(ctx context.Context, reference string) (*store.Patient, error) {
	var patient store.Patient
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		err := db.Preload("IdentificationDocument").
			Where("reference = ?", reference).
			First(&patient).Error
		if err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &patient, nil
}
