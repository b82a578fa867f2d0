// SPDX-License-Identifier: Apache-2.0

// Package camera abstracts the capture device behind a small capability
// interface: open a stream under constraints, adjust the constraints while
// live, grab single frames, and release the device.
//
// The package ships an exec-based implementation ([NewExecProvider]) that
// shells out to a configured snapshot command, so any external grabber that
// writes one encoded frame to stdout can serve as the device.
package camera

import (
	"context"
	"errors"
)

//go:generate mockgen -source=camera.go -destination=../mock/camera_mock.go -package=mock

// ErrCameraUnavailable is returned when no capture device can be acquired:
// missing configuration, denied permission, or no device matching the
// requested constraints.
var ErrCameraUnavailable = errors.New("camera unavailable")

// Constraints describes the requested capture parameters. Implementations
// apply them best-effort: an unsupported constraint is ignored, never an
// error.
type Constraints struct {
	// FacingMode selects the device orientation ("environment" for the
	// rear camera).
	FacingMode string

	// Width and Height are the ideal frame dimensions in pixels.
	Width  int
	Height int

	// Zoom is the requested zoom factor; 0 leaves the device default.
	Zoom float64
}

// Frame is one captured image.
type Frame struct {
	Data     []byte
	MimeType string
}

// Stream is a live capture session. Streams are not safe for concurrent
// use; the capture sequencer serialises access.
type Stream interface {
	// ApplyConstraints adjusts the live stream. Unsupported constraints
	// are ignored.
	ApplyConstraints(ctx context.Context, constraints Constraints) error

	// Snapshot grabs a single encoded frame.
	Snapshot(ctx context.Context) (Frame, error)

	// Close releases the device.
	Close() error
}

// Provider acquires capture streams.
type Provider interface {
	// Open acquires the device under the given constraints. Returns
	// [ErrCameraUnavailable] (wrapped) when no device can be acquired.
	Open(ctx context.Context, constraints Constraints) (Stream, error)
}
