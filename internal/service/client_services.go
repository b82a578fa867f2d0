// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/openderm/lesionsnap/internal/adapter"
	"github.com/openderm/lesionsnap/internal/camera"
	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/store"
)

type ClientServices struct {
	QualityAssessor  QualityAssessor
	UploadAssembler  UploadAssembler
	CaptureSequencer CaptureSequencer
	BugReporter      adapter.ServerAdapter
}

func NewClientServices(
	provider camera.Provider,
	session store.SessionStore,
	serverAdapter adapter.ServerAdapter,
	logger *logger.Logger,
) *ClientServices {
	quality := NewQualityAssessor(serverAdapter, logger)
	assembler := NewUploadAssembler(logger)

	return &ClientServices{
		QualityAssessor:  quality,
		UploadAssembler:  assembler,
		CaptureSequencer: NewCaptureSequencer(provider, quality, assembler, serverAdapter, session, logger),
		BugReporter:      serverAdapter,
	}
}
