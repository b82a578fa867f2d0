package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidImageID is returned when an annotation request carries an
	// image id that is not a positive integer literal.
	ErrInvalidImageID = errors.New("image id must be a positive integer")

	// ErrInvalidFlagLiteral is returned when an annotation request carries
	// anything but the exact strings "true" or "false".
	ErrInvalidFlagLiteral = errors.New("flag value must be \"true\" or \"false\"")

	// ErrEmptyBugMessage is returned when a feedback submission has no
	// message text.
	ErrEmptyBugMessage = errors.New("bug report message is required")

	// ErrInvalidExportWindow is returned when the export request's
	// lastMonths field is neither "All" nor a positive integer literal.
	ErrInvalidExportWindow = errors.New("lastMonths must be \"All\" or a positive integer")

	// ErrScorerUnavailable wraps any failure to obtain a verdict from the
	// external image-quality scorer, deadline expiry included.
	ErrScorerUnavailable = errors.New("image-quality scorer unavailable")
)
