package commands

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"starfolio/internal/application"
	"starfolio/internal/domain"
	"starfolio/internal/ports"
)

// ExportResult summarises a written diagram
type ExportResult struct {
	Sky     string
	Format  string
	Active  domain.ViewID
	Lines   int
	Markers int
	Labels  int
}

// ExportSkyCommand renders a sky for a view state and writes it to W
type ExportSkyCommand struct {
	content  ports.ContentSource
	exporter ports.SceneExporter
	W        io.Writer
	Sky      string
	Format   string
	Active   string
	Hovered  string
	Style    domain.SceneStyle
}

// NewExportSkyCommand creates a new ExportSkyCommand with the default style
func NewExportSkyCommand(content ports.ContentSource, exporter ports.SceneExporter, w io.Writer, sky, format, active string) *ExportSkyCommand {
	return &ExportSkyCommand{
		content:  content,
		exporter: exporter,
		W:        w,
		Sky:      sky,
		Format:   format,
		Active:   active,
		Style:    domain.DefaultSceneStyle(),
	}
}

// Validate checks the export parameters
func (c *ExportSkyCommand) Validate() error {
	if c.W == nil {
		return &application.ValidationError{Field: "out", Message: "output is required"}
	}
	if _, err := application.ValidateView("active", c.Active); err != nil {
		return err
	}
	if c.Hovered != "" {
		if _, err := application.ValidateView("hovered", c.Hovered); err != nil {
			return err
		}
	}
	if !slices.Contains(c.exporter.Formats(), strings.ToLower(c.Format)) {
		return &application.ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unsupported format %q (want %s)", c.Format, strings.Join(c.exporter.Formats(), " or ")),
			Kind:    application.ErrUnsupportedFormat,
		}
	}
	return nil
}

// Scene builds the scene the command would export
func (c *ExportSkyCommand) Scene() (domain.Scene, error) {
	name := c.Sky
	if name == "" {
		name = ports.SkyNav
	}
	sky, err := c.content.Sky(name)
	if err != nil {
		return domain.Scene{}, err
	}

	active, _ := application.ValidateView("active", c.Active)
	state := domain.NewViewState(active)
	if c.Hovered != "" {
		hovered, _ := application.ValidateView("hovered", c.Hovered)
		state.Hover(hovered)
	}
	return domain.RenderScene(sky, state, c.Style), nil
}

// Execute runs the export command
func (c *ExportSkyCommand) Execute(ctx context.Context) (*ExportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	scene, err := c.Scene()
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(c.Format)
	if err := c.exporter.Export(c.W, scene, format); err != nil {
		return nil, fmt.Errorf("failed to export %s: %w", format, err)
	}

	active, _ := application.ValidateView("active", c.Active)
	sky := c.Sky
	if sky == "" {
		sky = ports.SkyNav
	}
	return &ExportResult{
		Sky:     sky,
		Format:  format,
		Active:  active,
		Lines:   len(scene.Lines),
		Markers: len(scene.Markers),
		Labels:  len(scene.Labels),
	}, nil
}
