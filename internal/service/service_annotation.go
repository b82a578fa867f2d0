package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/store"
)

// annotationService parses and applies the manual review flags. The form
// literals are strict: the id must be a positive integer and the value must
// be exactly "true" or "false" — no YAML-style synonyms.
type annotationService struct {
	annotationRepository store.AnnotationRepository

	logger *logger.Logger
}

func NewAnnotationService(annotationRepository store.AnnotationRepository, logger *logger.Logger) AnnotationService {
	return &annotationService{
		annotationRepository: annotationRepository,
		logger:               logger,
	}
}

// SetPHI flags or clears contains_phi on a single image.
func (s *annotationService) SetPHI(ctx context.Context, imageID, value string) error {
	id, flag, err := parseAnnotation(imageID, value)
	if err != nil {
		return err
	}
	return s.annotationRepository.SetImagePHI(ctx, id, flag)
}

// SetQuality flags or clears poor_quality on a single image.
func (s *annotationService) SetQuality(ctx context.Context, imageID, value string) error {
	id, flag, err := parseAnnotation(imageID, value)
	if err != nil {
		return err
	}
	return s.annotationRepository.SetImageQuality(ctx, id, flag)
}

func parseAnnotation(imageID, value string) (int64, bool, error) {
	id, err := strconv.ParseInt(imageID, 10, 64)
	if err != nil || id <= 0 {
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidImageID, imageID)
	}

	switch value {
	case "true":
		return id, true, nil
	case "false":
		return id, false, nil
	default:
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidFlagLiteral, value)
	}
}
