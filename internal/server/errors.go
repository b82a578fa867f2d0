// SPDX-License-Identifier: Apache-2.0

package server

import "errors"

var (
	errNoListenAddress = errors.New("no http listen address is configured")
)
