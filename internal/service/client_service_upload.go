// SPDX-License-Identifier: Apache-2.0

package service

import (
	"runtime"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/utils"
	"github.com/openderm/lesionsnap/models"
)

// uploadAssembler flattens the session into one multipart-ready batch.
type uploadAssembler struct {
	logger *logger.Logger
}

func NewUploadAssembler(logger *logger.Logger) UploadAssembler {
	return &uploadAssembler{logger: logger}
}

// Assemble drops the untaken slots and pairs every remaining frame with a
// generated filename and its metadata entry. metas[i] describes the i-th
// image part; the server zips them by index, so order and length always
// match.
func (a *uploadAssembler) Assemble(form models.IntakeForm, results []models.CaptureStepResult) (models.UploadBatch, error) {
	batch := models.UploadBatch{
		IntakeForm: form,
		DeviceType: deviceCategory(),
		DeviceOS:   deviceOS(),
	}

	for i, result := range results {
		if !result.Taken() {
			continue
		}

		filename := utils.NewImageFilename(form.ClinicalDiagnosis, result.MimeType)

		batch.Images = append(batch.Images, models.CapturedImage{
			Filename: filename,
			MimeType: result.MimeType,
			Data:     result.Frame,
		})
		batch.Metas = append(batch.Metas, models.ImageMeta{
			Code:        models.StepID(i),
			CaptureTime: result.CaptureTime,
			Filename:    filename,
		})
	}

	if len(batch.Images) == 0 {
		return models.UploadBatch{}, ErrNoCapturedImages
	}

	return batch, nil
}

// deviceCategory reports the capture device class. A terminal client is
// always a desktop-class device.
func deviceCategory() string {
	return "desktop"
}

func deviceOS() string {
	switch runtime.GOOS {
	case "darwin":
		return "macOS"
	case "windows":
		return "Windows"
	case "linux":
		return "Linux"
	default:
		return runtime.GOOS
	}
}
