//go:build !windows

package icon

import (
	"fmt"

	"launchpad/internal/platform"
)

type unsupportedProvider struct{}

func newProvider() Provider {
	return unsupportedProvider{}
}

func (unsupportedProvider) Icon(string) (*Raster, error) {
	return nil, fmt.Errorf("%w: %w", ErrExtraction, platform.ErrUnsupported)
}
