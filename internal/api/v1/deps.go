package v1

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vmunix/catalogdash/internal/catalog"
	"github.com/vmunix/catalogdash/internal/render"
)

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Loader provides the catalog dataset.
type Loader interface {
	Load(ctx context.Context) (*catalog.Dataset, error)
	Refresh(ctx context.Context) (*catalog.Dataset, error)
	// Current returns the last loaded dataset without fetching.
	Current() (*catalog.Dataset, error)
	Source() string
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional fields fall back to defaults.
type ServerDeps struct {
	// Required dependencies
	Loader Loader

	// Optional
	Logger       *slog.Logger
	Version      string
	FocusCountry string         // "Brazil" when empty
	Charts       render.Options // PNG size
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Loader == nil {
		return errors.New("loader is required")
	}
	return nil
}
