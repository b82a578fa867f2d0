package models

// ExportRequest is the JSON body of the export endpoint. The string fields
// carry the literal values of the download form's three toggles.
type ExportRequest struct {
	// LastMonths is a positive integer in string form, or "All" for an
	// unbounded export.
	LastMonths string `json:"lastMonths"`

	// PHIAllowed is "All" when images flagged as containing PHI may be
	// included; any other value restricts the export to PHI-free images.
	PHIAllowed string `json:"phiAllowed"`

	// GoodQualityOnly is "Good quality only" to exclude images flagged as
	// poor quality; any other value includes them.
	GoodQualityOnly string `json:"goodQualityOnly"`
}

// ExportFilter is the parsed form of ExportRequest consumed by the export
// query builder.
type ExportFilter struct {
	// LastMonths bounds captured_at to the trailing N months; 0 means
	// unbounded.
	LastMonths int

	// ExcludePHI adds contains_phi = false to the conjunction.
	ExcludePHI bool

	// GoodQualityOnly adds poor_quality = false to the conjunction.
	GoodQualityOnly bool
}

// ExportArchive is a fully buffered export bundle ready to be served as an
// attachment.
type ExportArchive struct {
	// Filename is the suggested download name
	// ("selfie_export_<YYYYMMDD_HHMMSS>.tar.gz").
	Filename string

	// Data is the complete gzipped tar payload.
	Data []byte

	// ImagesAdded and ImagesMissing count the referenced image files that
	// were bundled and those missing on disk (skipped, not fatal).
	ImagesAdded   int
	ImagesMissing int
}

// ResultSet is a generically shaped query result: the column names of the
// source query plus one positional value slice per row. The spreadsheet
// writer derives its header from Columns (schema-on-first-row semantics: an
// empty Rows produces a headerless, empty sheet).
type ResultSet struct {
	Columns []string
	Rows    [][]any
}

// Empty reports whether the result set has no rows.
func (rs ResultSet) Empty() bool {
	return len(rs.Rows) == 0
}
