package ports

import (
	"errors"
	"io"

	"starfolio/internal/domain"
)

// ErrUnsupportedFormat is returned by exporters for unknown formats
var ErrUnsupportedFormat = errors.New("unsupported format")

// SceneExporter writes a rendered scene in a file format
type SceneExporter interface {
	// Formats lists the supported formats ("svg", "png")
	Formats() []string

	// Export writes the scene to w in the given format
	Export(w io.Writer, scene domain.Scene, format string) error
}
