// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openderm/lesionsnap/internal/config"
	"github.com/openderm/lesionsnap/internal/logger"
)

func newScorerService(url string, deadline time.Duration) QualityService {
	return NewQualityService(config.Quality{ScorerURL: url, Deadline: deadline}, logger.Nop())
}

func TestQualityService_Assess_Success(t *testing.T) {
	scorer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1 << 20))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "frame.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Sharpness":{"confidence":0.91},"Focus Area":{"confidence":0.42,"explanation":"lesion near frame edge"}}`))
	}))
	defer scorer.Close()

	verdict, err := newScorerService(scorer.URL, 2*time.Second).Assess(context.Background(), []byte("jpeg"), "frame.jpg")

	require.NoError(t, err)
	assert.True(t, verdict.OK)
	assert.InDelta(t, 0.91, verdict.Sharpness.Confidence, 1e-9)
	assert.InDelta(t, 0.42, verdict.FocusArea.Confidence, 1e-9)
	assert.Equal(t, "lesion near frame edge", verdict.FocusArea.Explanation)
}

func TestQualityService_Assess_ScorerErrorStatus(t *testing.T) {
	scorer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer scorer.Close()

	_, err := newScorerService(scorer.URL, 2*time.Second).Assess(context.Background(), []byte("jpeg"), "frame.jpg")

	require.ErrorIs(t, err, ErrScorerUnavailable)
}

func TestQualityService_Assess_ScorerUnreachable(t *testing.T) {
	scorer := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	scorer.Close() // connection refused from here on

	_, err := newScorerService(scorer.URL, 2*time.Second).Assess(context.Background(), []byte("jpeg"), "frame.jpg")

	require.ErrorIs(t, err, ErrScorerUnavailable)
}

func TestQualityService_Assess_DeadlineExpires(t *testing.T) {
	release := make(chan struct{})
	scorer := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		scorer.Close()
	}()

	start := time.Now()
	_, err := newScorerService(scorer.URL, 100*time.Millisecond).Assess(context.Background(), []byte("jpeg"), "frame.jpg")

	require.ErrorIs(t, err, ErrScorerUnavailable)
	assert.Less(t, time.Since(start), 5*time.Second)
}
