// SPDX-License-Identifier: Apache-2.0

package service

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/store"
	"github.com/openderm/lesionsnap/models"
)

// Fixed member names inside the exported archive.
const (
	archiveDataSheet     = "Data"
	archiveFeedbackSheet = "Feedback"

	archiveDataFile     = "export/db_export.xlsx"
	archiveFeedbackFile = "export/feedback_export.xlsx"
	archiveImagesPrefix = "export/images/"
)

// exportService assembles the research bundle: two spreadsheets plus every
// referenced image file, packed into a gzipped tar held fully in memory.
type exportService struct {
	exportRepository store.ExportRepository
	bugRepository    store.BugReportRepository
	files            store.FileStore

	logger *logger.Logger
}

func NewExportService(exportRepository store.ExportRepository, bugRepository store.BugReportRepository, files store.FileStore, logger *logger.Logger) ExportService {
	return &exportService{
		exportRepository: exportRepository,
		bugRepository:    bugRepository,
		files:            files,
		logger:           logger,
	}
}

// BuildArchive runs the filtered export query and the full feedback query,
// renders both as xlsx, bundles the referenced images, and returns the
// complete archive. Images missing on disk are counted and skipped, never
// fatal.
func (s *exportService) BuildArchive(ctx context.Context, req models.ExportRequest) (models.ExportArchive, error) {
	log := logger.FromContext(ctx)

	filter, err := parseExportRequest(req)
	if err != nil {
		return models.ExportArchive{}, err
	}

	data, err := s.exportRepository.GetExportRows(ctx, filter)
	if err != nil {
		return models.ExportArchive{}, err
	}

	feedback, err := s.bugRepository.GetBugReports(ctx)
	if err != nil {
		return models.ExportArchive{}, err
	}

	dataSheet, err := writeWorkbook(archiveDataSheet, data)
	if err != nil {
		return models.ExportArchive{}, err
	}

	feedbackSheet, err := writeWorkbook(archiveFeedbackSheet, feedback)
	if err != nil {
		return models.ExportArchive{}, err
	}

	imagePaths := collectImagePaths(data)

	archive, added, missing, err := s.packArchive(ctx, dataSheet, feedbackSheet, imagePaths)
	if err != nil {
		return models.ExportArchive{}, err
	}

	log.Info().
		Str("func", "exportService.BuildArchive").
		Int("rows", len(data.Rows)).
		Int("feedback", len(feedback.Rows)).
		Int("images_added", added).
		Int("images_missing", missing).
		Msg("export archive assembled")

	return models.ExportArchive{
		Filename:      fmt.Sprintf("selfie_export_%s.tar.gz", time.Now().UTC().Format("20060102_150405")),
		Data:          archive,
		ImagesAdded:   added,
		ImagesMissing: missing,
	}, nil
}

// parseExportRequest maps the form's literal toggles onto a query filter.
// The time window accepts "All" (any case) for unbounded or a positive
// integer month count.
func parseExportRequest(req models.ExportRequest) (models.ExportFilter, error) {
	filter := models.ExportFilter{
		ExcludePHI:      req.PHIAllowed != "All",
		GoodQualityOnly: req.GoodQualityOnly == "Good quality only",
	}

	window := strings.TrimSpace(req.LastMonths)
	if window != "" && !strings.EqualFold(window, "All") {
		months, err := strconv.Atoi(window)
		if err != nil || months <= 0 {
			return models.ExportFilter{}, fmt.Errorf("%w: %q", ErrInvalidExportWindow, req.LastMonths)
		}
		filter.LastMonths = months
	}

	return filter, nil
}

// writeWorkbook renders a result set as a single-sheet xlsx: column names
// on the first row, one row per record. An empty result set produces a
// workbook with an empty, headerless sheet.
func writeWorkbook(sheet string, rs models.ResultSet) ([]byte, error) {
	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("error naming sheet %q: %w", sheet, err)
	}

	if !rs.Empty() {
		for ci, column := range rs.Columns {
			cell, err := excelize.CoordinatesToCellName(ci+1, 1)
			if err != nil {
				return nil, fmt.Errorf("error addressing header cell: %w", err)
			}
			if err = book.SetCellValue(sheet, cell, column); err != nil {
				return nil, fmt.Errorf("error writing header cell: %w", err)
			}
		}

		for ri, row := range rs.Rows {
			for ci, value := range row {
				cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
				if err != nil {
					return nil, fmt.Errorf("error addressing cell: %w", err)
				}
				if err = book.SetCellValue(sheet, cell, normalizeCellValue(value)); err != nil {
					return nil, fmt.Errorf("error writing cell: %w", err)
				}
			}
		}
	}

	buf, err := book.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error serializing workbook %q: %w", sheet, err)
	}

	return buf.Bytes(), nil
}

// normalizeCellValue converts driver-level values to spreadsheet-friendly
// ones: byte slices become strings, timestamps lose sub-second noise.
func normalizeCellValue(value any) any {
	switch v := value.(type) {
	case []byte:
		return string(v)
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return value
	}
}

// collectImagePaths returns the distinct stored image paths of the result
// set, in first-seen order, normalized to be relative to the image
// directory. Placeholder entries are skipped.
func collectImagePaths(rs models.ResultSet) []string {
	column := -1
	for i, name := range rs.Columns {
		if name == "file_path" {
			column = i
			break
		}
	}
	if column < 0 {
		return nil
	}

	seen := make(map[string]struct{})
	paths := make([]string, 0, len(rs.Rows))

	for _, row := range rs.Rows {
		raw, ok := row[column].(string)
		if !ok {
			if b, isBytes := row[column].([]byte); isBytes {
				raw = string(b)
			}
		}
		if raw == "" || raw == "N/A" {
			continue
		}

		for _, entry := range strings.Split(raw, listDelimiter) {
			rel := store.StripStoragePrefix(strings.TrimSpace(entry))
			if rel == "" {
				continue
			}
			if _, dup := seen[rel]; dup {
				continue
			}
			seen[rel] = struct{}{}
			paths = append(paths, rel)
		}
	}

	return paths
}

// packArchive writes the gzipped tar: both spreadsheets, then every
// resolvable image under the images prefix.
func (s *exportService) packArchive(ctx context.Context, dataSheet, feedbackSheet []byte, imagePaths []string) ([]byte, int, int, error) {
	log := logger.FromContext(ctx)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	if err := writeTarFile(tw, archiveDataFile, dataSheet); err != nil {
		return nil, 0, 0, err
	}
	if err := writeTarFile(tw, archiveFeedbackFile, feedbackSheet); err != nil {
		return nil, 0, 0, err
	}

	added, missing := 0, 0
	for _, rel := range imagePaths {
		abs, err := s.files.Resolve(rel)
		if err != nil {
			log.Warn().
				Str("func", "exportService.packArchive").
				Str("path", rel).
				Msg("skipping image path outside storage directory")
			missing++
			continue
		}

		payload, err := os.ReadFile(abs)
		if err != nil {
			log.Warn().
				Str("func", "exportService.packArchive").
				Str("path", rel).
				Msg("referenced image missing on disk, skipping")
			missing++
			continue
		}

		if err = writeTarFile(tw, archiveImagesPrefix+rel, payload); err != nil {
			return nil, 0, 0, err
		}
		added++
	}

	if err := tw.Close(); err != nil {
		return nil, 0, 0, fmt.Errorf("error finalizing archive: %w", err)
	}
	if err := gz.Close(); err != nil {
		return nil, 0, 0, fmt.Errorf("error finalizing archive compression: %w", err)
	}

	return buf.Bytes(), added, missing, nil
}

func writeTarFile(tw *tar.Writer, name string, data []byte) error {
	header := &tar.Header{
		Name:    name,
		Mode:    0o644,
		Size:    int64(len(data)),
		ModTime: time.Now().UTC(),
	}
	if err := tw.WriteHeader(header); err != nil {
		return fmt.Errorf("error writing archive header %q: %w", name, err)
	}
	if _, err := tw.Write(data); err != nil {
		return fmt.Errorf("error writing archive member %q: %w", name, err)
	}
	return nil
}
