// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/openderm/lesionsnap/models"
)

const (
	upsertPatient = `INSERT INTO patients (patient_id, age_range, sex, monk_skin_tone, fitzpatrick_skin_type, self_reported_race)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (patient_id) DO UPDATE SET
		age_range             = EXCLUDED.age_range,
		sex                   = EXCLUDED.sex,
		monk_skin_tone        = EXCLUDED.monk_skin_tone,
		fitzpatrick_skin_type = EXCLUDED.fitzpatrick_skin_type,
		self_reported_race    = EXCLUDED.self_reported_race;`

	insertLesion = `INSERT INTO lesions (patient_id, anatomic_site, vectra_id, biopsied, clinical_diagnosis)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id;`

	insertImage = `INSERT INTO images (lesion_id, file_path, captured_at, device_type, device_os, image_type)
	VALUES ($1, $2, $3, $4, $5, $6);`

	updateImagePHI = `UPDATE images
	SET contains_phi = $1
	WHERE id = $2;`

	updateImageQuality = `UPDATE images
	SET poor_quality = $1
	WHERE id = $2;`

	insertBugReport = `INSERT INTO bug_reports (message)
	VALUES ($1);`

	getBugReports = `SELECT id, message, created_at
	FROM bug_reports
	ORDER BY id;`

	countImages = `SELECT COUNT(*) FROM images;`
)

// psql is the shared statement builder configured for PostgreSQL-style
// positional placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// lesionSelectColumns is the projection of the aggregated dashboard query.
// The per-image columns are collapsed into comma-delimited lists; every list
// is ordered by image id so the lists stay positionally aligned.
var lesionSelectColumns = []string{
	"p.patient_id",
	"p.age_range",
	"p.sex",
	"p.monk_skin_tone",
	"p.fitzpatrick_skin_type",
	"p.self_reported_race",
	"l.id AS lesion_id",
	"l.anatomic_site",
	"l.vectra_id",
	"l.biopsied",
	"l.clinical_diagnosis",
	"STRING_AGG(i.file_path, ', ' ORDER BY i.id) AS filepaths",
	"STRING_AGG(i.id::text, ', ' ORDER BY i.id) AS image_ids",
	"STRING_AGG(i.poor_quality::text, ', ' ORDER BY i.id) AS image_poor_qualities",
	"STRING_AGG(i.contains_phi::text, ', ' ORDER BY i.id) AS image_contains_phi",
	"STRING_AGG(i.image_type, ', ' ORDER BY i.id) AS image_types",
	"MIN(i.captured_at) AS captured_at",
	"i.device_type",
	"i.device_os",
}

// buildLesionSelect constructs the aggregated dashboard query for the given
// filter. Filters are ANDed equality predicates; absent filters add no
// clause at all.
func buildLesionSelect(filter models.DatasetFilter) (string, []any, error) {
	builder := psql.Select(lesionSelectColumns...).
		From("images i").
		Join("lesions l ON l.id = i.lesion_id").
		Join("patients p ON p.patient_id = l.patient_id").
		GroupBy(
			"p.patient_id",
			"p.age_range",
			"p.sex",
			"p.monk_skin_tone",
			"p.fitzpatrick_skin_type",
			"p.self_reported_race",
			"l.id",
			"l.anatomic_site",
			"l.vectra_id",
			"l.biopsied",
			"l.clinical_diagnosis",
			"i.device_type",
			"i.device_os",
		).
		OrderBy("l.id DESC")

	if filter.AnatomicSite != "" {
		builder = builder.Where(sq.Eq{"l.anatomic_site": filter.AnatomicSite})
	}

	if filter.Diagnosis != "" {
		builder = builder.Where(sq.Eq{"l.clinical_diagnosis": filter.Diagnosis})
	}

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	return builder.ToSql()
}

// exportSelectColumns is the flat per-image projection of the export query.
// Column aliases become the spreadsheet header row.
var exportSelectColumns = []string{
	"i.id AS image_id",
	"l.patient_id",
	"p.age_range",
	"p.sex",
	"p.monk_skin_tone",
	"p.fitzpatrick_skin_type",
	"p.self_reported_race",
	"l.id AS lesion_id",
	"l.anatomic_site",
	"l.vectra_id",
	"l.biopsied",
	"l.clinical_diagnosis",
	"i.file_path",
	"i.captured_at",
	"i.device_type",
	"i.device_os",
	"i.image_type",
	"i.contains_phi",
	"i.poor_quality",
}

// buildExportSelect constructs the per-image export query. All requested
// restrictions are combined into a single conjunction.
func buildExportSelect(filter models.ExportFilter) (string, []any, error) {
	builder := psql.Select(exportSelectColumns...).
		From("images i").
		Join("lesions l ON l.id = i.lesion_id").
		Join("patients p ON p.patient_id = l.patient_id").
		OrderBy("i.id")

	if filter.LastMonths > 0 {
		builder = builder.Where("i.captured_at >= now() - make_interval(months => ?)", filter.LastMonths)
	}

	if filter.ExcludePHI {
		builder = builder.Where(sq.Eq{"i.contains_phi": false})
	}

	if filter.GoodQualityOnly {
		builder = builder.Where(sq.Eq{"i.poor_quality": false})
	}

	return builder.ToSql()
}
