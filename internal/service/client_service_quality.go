// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"math"

	"github.com/openderm/lesionsnap/internal/adapter"
	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/models"
)

// confidenceThreshold splits each scorer confidence into its good/bad
// phrasing.
const confidenceThreshold = 0.8

// qualityAssessor turns the scorer's two confidences into the capture
// flow's human-readable verdict.
type qualityAssessor struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewQualityAssessor(serverAdapter adapter.ServerAdapter, logger *logger.Logger) QualityAssessor {
	return &qualityAssessor{serverAdapter: serverAdapter, logger: logger}
}

// Assess scores one frame. Any failure — transport, scorer, malformed
// response — produces the fixed fallback assessment instead of an error.
func (q *qualityAssessor) Assess(ctx context.Context, frame []byte, filename string) models.QualityAssessment {
	verdict, err := q.serverAdapter.AssessQuality(ctx, frame, filename)
	if err != nil || !verdict.OK {
		q.logger.Warn().
			Err(err).
			Str("func", "qualityAssessor.Assess").
			Msg("quality assessment unavailable, using fallback")
		return models.FallbackAssessment
	}

	return composeAssessment(verdict.Sharpness.Confidence, verdict.FocusArea.Confidence)
}

// composeAssessment builds the description and score from the two raw
// confidences. The two clauses are joined with "but" exactly when their
// threshold crossings disagree.
func composeAssessment(sharpness, focus float64) models.QualityAssessment {
	sharpGood := sharpness >= confidenceThreshold
	focusGood := focus >= confidenceThreshold

	description := "Object appears off-center "
	if focusGood {
		description = "Object appears well-centered "
	}

	if focusGood != sharpGood {
		description += "but "
	} else {
		description += "and "
	}

	if sharpGood {
		description += "edges are clear."
	} else {
		description += "edges are blurry"
	}

	return models.QualityAssessment{
		Description: description,
		Score:       int(math.Round((sharpness*0.5 + focus*0.5) * 100)),
	}
}
