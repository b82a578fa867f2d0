package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPatientID      = errors.New("patient identifier is required")
	ErrInvalidAgeRange     = errors.New("invalid age range")
	ErrInvalidSex          = errors.New("invalid sex")
	ErrInvalidMonkTone     = errors.New("monk skin tone must be between 1 and 10")
	ErrInvalidFitzpatrick  = errors.New("invalid fitzpatrick skin type")
	ErrInvalidAnatomicSite = errors.New("invalid anatomic site")
	ErrNoImagesProvided    = errors.New("at least one image is required")
	ErrMetasMisaligned     = errors.New("metas and images must align positionally")
	ErrUnknownImageType    = errors.New("unknown image type code")
)
