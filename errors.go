// SPDX-License-Identifier: EPL-2.0

package audring

import "errors"

var (
	// Compare inputs
	ErrRateMismatch  = errors.New("sample rates differ")
	ErrShapeMismatch = errors.New("channel counts or lengths differ")
)
