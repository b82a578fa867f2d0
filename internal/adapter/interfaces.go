// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer of the capture client.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrBadRequest] for 400, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/openderm/lesionsnap/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the intake
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// UploadBatch submits one complete batch as a single multipart request:
	// the form scalars, every captured image as a positional binary part,
	// and the aligned metadata array. The batch is persisted all-or-nothing
	// on the server side.
	UploadBatch(ctx context.Context, batch models.UploadBatch) (models.UploadResponse, error)

	// AssessQuality submits a single frame for scoring and returns the
	// scorer's verdict unchanged. Callers decide the fallback on error.
	AssessQuality(ctx context.Context, frame []byte, filename string) (models.QualityResponse, error)

	// ReportBug appends one free-text feedback message.
	ReportBug(ctx context.Context, message string) error
}
