// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors for request parameters rejected before they reach the
// service layer. Callers can match against them with [errors.Is].
var (
	// errInvalidLastParam is returned when the dashboard "last" query
	// parameter is not a positive integer literal.
	errInvalidLastParam = errors.New(`"last" must be a positive integer`)
)
