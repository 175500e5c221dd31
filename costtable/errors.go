// Package costtable: sentinel error set.
package costtable

import "errors"

// ErrOutOfMemory indicates the M-table would exceed Options.MaxTableBytes.
// No partial table is retained when this is returned.
var ErrOutOfMemory = errors.New("costtable: allocation would exceed configured memory budget")
