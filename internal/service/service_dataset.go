package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/store"
	"github.com/openderm/lesionsnap/models"
)

// listDelimiter separates the entries of every STRING_AGG list.
const listDelimiter = ", "

// datasetService serves the dashboard reads and reshapes the aggregated
// image lists into the dense per-step matrix.
type datasetService struct {
	datasetRepository store.DatasetRepository

	logger *logger.Logger
}

func NewDatasetService(datasetRepository store.DatasetRepository, logger *logger.Logger) DatasetService {
	return &datasetService{
		datasetRepository: datasetRepository,
		logger:            logger,
	}
}

// GetDataset returns the filtered lesion rows, each with its Images slot
// array populated.
func (s *datasetService) GetDataset(ctx context.Context, filter models.DatasetFilter) ([]models.LesionRow, error) {
	rows, err := s.datasetRepository.GetLesionRows(ctx, filter)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].Images = reshapeImageSlots(rows[i])
	}

	return rows, nil
}

// GetDatasetSize returns the total number of stored images.
func (s *datasetService) GetDatasetSize(ctx context.Context) (int64, error) {
	return s.datasetRepository.CountImages(ctx)
}

// reshapeImageSlots turns a row's positionally aligned delimited lists into
// a dense array of exactly StepCount slots in canonical step order. A step
// never captured keeps its placeholder; an entry with an unknown step
// identity is dropped; when two entries claim the same step the later one
// wins.
func reshapeImageSlots(row models.LesionRow) []models.ImageSlot {
	slots := make([]models.ImageSlot, models.StepCount)
	for i := range slots {
		slots[i] = models.PlaceholderSlot(i)
	}

	types := strings.Split(row.ImageTypes, listDelimiter)
	ids := strings.Split(row.ImageIDs, listDelimiter)
	files := strings.Split(row.FilePaths, listDelimiter)
	poor := strings.Split(row.PoorQualities, listDelimiter)
	phi := strings.Split(row.ContainsPHIs, listDelimiter)

	for i, imageType := range types {
		slot := models.StepSlot(strings.TrimSpace(imageType))
		if slot < 0 {
			continue
		}

		entry := models.ImageSlot{ImageType: models.StepID(slot), File: "N/A"}
		if i < len(ids) {
			entry.ID, _ = strconv.ParseInt(strings.TrimSpace(ids[i]), 10, 64)
		}
		if i < len(files) {
			entry.File = strings.TrimSpace(files[i])
		}
		if i < len(poor) {
			entry.PoorQuality, _ = strconv.ParseBool(strings.TrimSpace(poor[i]))
		}
		if i < len(phi) {
			entry.ContainsPHI, _ = strconv.ParseBool(strings.TrimSpace(phi[i]))
		}

		slots[slot] = entry
	}

	return slots
}
