// SPDX-License-Identifier: MIT

package polynomial

import (
	"errors"
	"fmt"
)

// ErrInvalidState is returned when an operation is undefined for the
// receiver's current shape, e.g. Degree on an empty coefficient sequence.
// Callers match it with errors.Is.
var ErrInvalidState = errors.New("polynomial: invalid state")

// polyErrorf wraps err with Polynomial method context.
func polyErrorf(method string, err error) error {
	return fmt.Errorf("Polynomial.%s: %w", method, err)
}
