// Package platform holds the shared sentinel for capabilities that exist only
// on some operating systems. Capability constructors return working
// implementations where the OS supports them and implementations that fail
// with ErrUnsupported elsewhere, so call sites stay free of GOOS conditionals.
package platform

import "errors"

// ErrUnsupported marks an operation that is meaningful only on another
// operating system. Benign boolean queries should return false instead of
// this error.
var ErrUnsupported = errors.New("not supported on this platform")
