// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

var (
	// ErrNoCapturedImages is returned when a submit is attempted with no
	// captured frames in any slot.
	ErrNoCapturedImages = errors.New("no captured images to upload")

	// ErrNotPreviewing is returned when a capture is attempted without a
	// live camera stream.
	ErrNotPreviewing = errors.New("camera is not previewing")
)
