// Package registry persists the mapping from competitor name to
// competitor record across runs.
package registry

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/marketscout/compete-cli/internal/model"
)

// Registry stores tracked competitors keyed by their unique name.
type Registry interface {
	// Add upserts a competitor. The name must be non-empty.
	Add(ctx context.Context, c model.Competitor) error

	// Get returns the competitor with the given name, or nil when the
	// name is not tracked.
	Get(ctx context.Context, name string) (*model.Competitor, error)

	// List returns all tracked competitors sorted by name.
	List(ctx context.Context) ([]model.Competitor, error)

	// Remove deletes a competitor and reports whether it was present.
	Remove(ctx context.Context, name string) (bool, error)

	// Migrate prepares the backing store (directories, schema).
	Migrate(ctx context.Context) error

	Close() error
}

func validateName(name string) error {
	if name == "" {
		return eris.New("registry: competitor name must not be empty")
	}
	return nil
}
