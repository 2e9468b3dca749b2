// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrOperationFailed indicates a storage failure. The enclosing transaction has been rolled back.
var ErrOperationFailed = errors.New("operation failed")
