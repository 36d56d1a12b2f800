package form

import (
	"context"
	"net/mail"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bornholm/intake/internal/locale"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

// ValidationRule represents a validation rule that can be applied at runtime
type ValidationRule interface {
	Validate(ctx context.Context, form *Form, field Field) error
}

// RequiredRule validates that a field is not empty
type RequiredRule struct{}

var _ ValidationRule = &RequiredRule{}

func (r RequiredRule) Validate(ctx context.Context, f *Form, field Field) error {
	found := true
	if field.IsFile() {
		if headers := f.Files[field.Name]; len(headers) == 0 {
			found = false
		}
	} else {
		value, exists := f.Values[field.Name]
		if !exists || strings.TrimSpace(value) == "" {
			found = false
		}
	}

	if !found {
		return errors.New(locale.T(ctx, "form.errors.required"))
	}

	return nil
}

// MinLengthRule validates minimum string length
type MinLengthRule struct {
	MinLength int
}

var _ ValidationRule = &MinLengthRule{}

func (r MinLengthRule) Validate(ctx context.Context, f *Form, field Field) error {
	value := f.Values[field.Name]
	if value == "" {
		return nil
	}

	if utf8.RuneCountInString(value) < r.MinLength {
		return errors.New(locale.T(ctx, "form.errors.min_length", locale.M{"min": r.MinLength}))
	}

	return nil
}

// MaxLengthRule validates maximum string length
type MaxLengthRule struct {
	MaxLength int
}

var _ ValidationRule = &MaxLengthRule{}

func (r MaxLengthRule) Validate(ctx context.Context, f *Form, field Field) error {
	value := f.Values[field.Name]
	if utf8.RuneCountInString(value) > r.MaxLength {
		return errors.New(locale.T(ctx, "form.errors.max_length", locale.M{"max": r.MaxLength}))
	}
	return nil
}

// EmailRule validates that a value is an email address
type EmailRule struct{}

var _ ValidationRule = &EmailRule{}

func (r EmailRule) Validate(ctx context.Context, f *Form, field Field) error {
	value := strings.TrimSpace(f.Values[field.Name])
	if value == "" {
		return nil
	}

	address, err := mail.ParseAddress(value)
	if err != nil || address.Address != value {
		return errors.New(locale.T(ctx, "form.errors.email"))
	}

	return nil
}

// PhoneNumberRule validates that a value is a valid phone number,
// national numbers being resolved against Region
type PhoneNumberRule struct {
	Region string
}

var _ ValidationRule = &PhoneNumberRule{}

func (r PhoneNumberRule) Validate(ctx context.Context, f *Form, field Field) error {
	value := f.Values[field.Name]
	if strings.TrimSpace(value) == "" {
		return nil
	}

	if _, err := ParsePhoneNumber(value, r.Region); err != nil {
		return errors.New(locale.T(ctx, "form.errors.phone"))
	}

	return nil
}

// DateRule validates that a value is a date in the field date format
type DateRule struct{}

var _ ValidationRule = &DateRule{}

func (r DateRule) Validate(ctx context.Context, f *Form, field Field) error {
	value := f.Values[field.Name]
	if strings.TrimSpace(value) == "" {
		return nil
	}

	format := dateFormatOrDefault(field.DateFormat)

	if _, err := ParseDate(value, format); err != nil {
		return errors.New(locale.T(ctx, "form.errors.date", locale.M{"format": format}))
	}

	return nil
}

// OneOfRule validates that a value is one of the field options, or of
// Values when set
type OneOfRule struct {
	Values []string
}

var _ ValidationRule = &OneOfRule{}

func (r OneOfRule) Validate(ctx context.Context, f *Form, field Field) error {
	value := f.Values[field.Name]
	if value == "" {
		return nil
	}

	allowed := r.Values
	if len(allowed) == 0 {
		allowed = make([]string, 0, len(field.Options))
		for _, o := range field.Options {
			allowed = append(allowed, o.Value)
		}
	}

	if !slices.Contains(allowed, value) {
		return errors.New(locale.T(ctx, "form.errors.one_of"))
	}

	return nil
}

// CheckedRule validates that a checkbox is checked
type CheckedRule struct{}

var _ ValidationRule = &CheckedRule{}

func (r CheckedRule) Validate(ctx context.Context, f *Form, field Field) error {
	if !IsChecked(f.Values[field.Name]) {
		return errors.New(locale.T(ctx, "form.errors.checked"))
	}

	return nil
}

// FileRule validates the size and the detected mime type of uploaded files
type FileRule struct {
	MaxSize   int64
	MimeTypes []string
}

var _ ValidationRule = &FileRule{}

func (r FileRule) Validate(ctx context.Context, f *Form, field Field) error {
	for _, header := range f.Files[field.Name] {
		if r.MaxSize > 0 && header.Size > r.MaxSize {
			return errors.New(locale.T(ctx, "form.errors.file_size", locale.M{"max": formatSize(r.MaxSize)}))
		}

		if len(r.MimeTypes) == 0 {
			continue
		}

		file, err := header.Open()
		if err != nil {
			return errors.WithStack(err)
		}

		mtype, err := mimetype.DetectReader(file)
		file.Close()
		if err != nil {
			return errors.WithStack(err)
		}

		if !mimetype.EqualsAny(mtype.String(), r.MimeTypes...) {
			return errors.New(locale.T(ctx, "form.errors.file_type", locale.M{"type": mtype.String()}))
		}
	}

	return nil
}
