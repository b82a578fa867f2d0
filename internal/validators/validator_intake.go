package validators

import (
	"context"

	"github.com/openderm/lesionsnap/models"
)

const (
	FieldPatientID    = "patient_id"
	FieldAgeRange     = "age_range"
	FieldSex          = "sex"
	FieldMonkTone     = "monk_tone"
	FieldFitzpatrick  = "fitzpatrick"
	FieldAnatomicSite = "anatomic_site"
	FieldImages       = "images"
	FieldMetas        = "metas"
)

type IntakeValidator struct {
}

func NewIntakeValidator() Validator {
	return &IntakeValidator{}
}

func (v *IntakeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadBatch:
		return v.validateUploadBatch(ctx, value, fields...)
	case *models.UploadBatch:
		return v.validateUploadBatch(ctx, *value, fields...)

	case models.IntakeForm:
		return v.validateForm(ctx, value, fields...)
	case *models.IntakeForm:
		return v.validateForm(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *IntakeValidator) validateUploadBatch(ctx context.Context, batch models.UploadBatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldPatientID, FieldAgeRange, FieldSex, FieldMonkTone,
			FieldFitzpatrick, FieldAnatomicSite, FieldImages, FieldMetas,
		}
	}

	for _, f := range fields {
		switch f {
		case FieldImages:
			if len(batch.Images) == 0 {
				return ErrNoImagesProvided
			}
		case FieldMetas:
			if len(batch.Metas) != len(batch.Images) {
				return ErrMetasMisaligned
			}
			for _, meta := range batch.Metas {
				if models.StepSlot(meta.Code) < 0 {
					return ErrUnknownImageType
				}
			}
		default:
			if err := v.validateFormField(batch.IntakeForm, f); err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *IntakeValidator) validateForm(ctx context.Context, form models.IntakeForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldPatientID, FieldAgeRange, FieldSex, FieldMonkTone,
			FieldFitzpatrick, FieldAnatomicSite,
		}
	}

	for _, f := range fields {
		if err := v.validateFormField(form, f); err != nil {
			return err
		}
	}

	return nil
}

func (v *IntakeValidator) validateFormField(form models.IntakeForm, field string) error {
	switch field {
	case FieldPatientID:
		if form.PatientID == "" {
			return ErrEmptyPatientID
		}
	case FieldAgeRange:
		if !models.IsValidAgeRange(form.AgeRange) {
			return ErrInvalidAgeRange
		}
	case FieldSex:
		if !isValidSex(form.Sex) {
			return ErrInvalidSex
		}
	case FieldMonkTone:
		if form.MonkTone != nil && (*form.MonkTone < 1 || *form.MonkTone > 10) {
			return ErrInvalidMonkTone
		}
	case FieldFitzpatrick:
		if form.Fitzpatrick != "" {
			if _, ok := models.FitzpatrickScale[form.Fitzpatrick]; !ok {
				return ErrInvalidFitzpatrick
			}
		}
	case FieldAnatomicSite:
		if !models.IsValidAnatomicSite(form.AnatomicSite) {
			return ErrInvalidAnatomicSite
		}
	default:
		return ErrUnknownField
	}

	return nil
}

func isValidSex(s string) bool {
	for _, sex := range models.Sexes {
		if sex == s {
			return true
		}
	}
	return false
}
