package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/openderm/lesionsnap/internal/config"
	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/models"
)

// defaultScorerDeadline bounds scorer calls when no deadline is configured.
const defaultScorerDeadline = 10 * time.Second

// qualityService forwards a single frame to the external image-quality
// scorer and relays its verdict. Every call is bounded by the configured
// deadline; expiry is reported as scorer unavailability, exactly like any
// other failure.
type qualityService struct {
	client   *resty.Client
	deadline time.Duration

	logger *logger.Logger
}

func NewQualityService(cfg config.Quality, logger *logger.Logger) QualityService {
	deadline := cfg.Deadline
	if deadline <= 0 {
		deadline = defaultScorerDeadline
	}

	return &qualityService{
		client:   resty.New().SetBaseURL(cfg.ScorerURL),
		deadline: deadline,
		logger:   logger,
	}
}

// Assess posts the frame to the scorer and returns its two confidence
// sections unchanged.
func (s *qualityService) Assess(ctx context.Context, image []byte, filename string) (models.QualityResponse, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, s.deadline)
	defer cancel()

	var verdict models.QualityResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetFileReader("image", filename, bytes.NewReader(image)).
		SetResult(&verdict).
		Post("")
	if err != nil {
		log.Err(err).
			Str("func", "qualityService.Assess").
			Msg("scorer call failed")
		return models.QualityResponse{}, fmt.Errorf("%w: %w", ErrScorerUnavailable, err)
	}

	if resp.IsError() {
		log.Error().
			Str("func", "qualityService.Assess").
			Int("status", resp.StatusCode()).
			Msg("scorer returned error status")
		return models.QualityResponse{}, fmt.Errorf("%w: status %d", ErrScorerUnavailable, resp.StatusCode())
	}

	verdict.OK = true
	return verdict, nil
}
