package icon

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"launchpad/internal/logging"
)

var (
	// ErrExtraction marks every icon extraction failure: missing icon
	// resource, unavailable icon subsystem, or a pixel buffer that cannot
	// be constructed from the returned bitmaps.
	ErrExtraction = errors.New("icon extraction failed")

	// ErrNoIcon is the specific case of a target exposing no icon resource.
	ErrNoIcon = fmt.Errorf("%w: target exposes no icon resource", ErrExtraction)
)

// Provider is the platform capability that queries the OS icon subsystem for
// a target's default icon (index 0) and returns its raw pixel data.
type Provider interface {
	Icon(targetPath string) (*Raster, error)
}

// Extractor produces icon assets for launch targets.
type Extractor struct {
	provider Provider
	iconsDir string
	logger   *slog.Logger
}

// New returns an extractor backed by the platform icon provider.
func New(iconsDir string, logger *slog.Logger) *Extractor {
	return NewWithProvider(newProvider(), iconsDir, logger)
}

// NewWithProvider returns an extractor with an explicit provider.
func NewWithProvider(provider Provider, iconsDir string, logger *slog.Logger) *Extractor {
	return &Extractor{
		provider: provider,
		iconsDir: iconsDir,
		logger:   logging.NewComponentLogger(logger, "icon"),
	}
}

// ExtractToFile extracts the target's icon and writes it to the asset
// directory as "<entryID>.png", returning the asset filename.
func (e *Extractor) ExtractToFile(targetPath, entryID string) (string, error) {
	data, err := e.extract(targetPath)
	if err != nil {
		return "", err
	}

	filename := entryID + ".png"
	if err := os.MkdirAll(e.iconsDir, 0o755); err != nil {
		return "", fmt.Errorf("create icon directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(e.iconsDir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write icon asset: %w", err)
	}

	e.logger.Debug("extracted icon asset",
		logging.String("target", targetPath),
		logging.String("asset", filename))
	return filename, nil
}

// ExtractInline is the legacy path: it returns the icon as a
// data:image/png;base64 URI and never fails, falling back to a built-in 1x1
// transparent placeholder on any error.
func (e *Extractor) ExtractInline(targetPath string) string {
	data, err := e.extract(targetPath)
	if err != nil {
		e.logger.Debug("inline extraction fell back to placeholder",
			logging.String("target", targetPath),
			logging.Error(err))
		return PlaceholderDataURI()
	}
	return dataURI(data)
}

func (e *Extractor) extract(targetPath string) ([]byte, error) {
	raster, err := e.provider.Icon(targetPath)
	if err != nil {
		return nil, err
	}
	img, err := raster.RGBA()
	if err != nil {
		return nil, err
	}
	return EncodePNG(img)
}

func dataURI(pngData []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngData)
}
