package ports

import (
	"context"

	"github.com/renato0307/schemer/internal/domain"
)

// SchemeReader loads the persisted scheme groups
type SchemeReader interface {
	// LoadSchemes returns the stored collection.
	// A store that does not exist yet yields an empty collection, not an error.
	LoadSchemes(ctx context.Context) (*domain.SchemeCollection, error)
}

// SchemeWriter persists scheme groups
type SchemeWriter interface {
	// SaveSchemes replaces everything stored with the given collection
	SaveSchemes(ctx context.Context, collection *domain.SchemeCollection) error
}

// SchemeRepository is the composite interface
type SchemeRepository interface {
	SchemeReader
	SchemeWriter
	Close() error
}

// CurrentSchemeStore keeps the name of the active scheme, separate from the
// scheme groups so switching schemes does not rewrite them
type CurrentSchemeStore interface {
	// CurrentScheme returns the stored name, or "" when none is stored
	CurrentScheme() (string, error)
	SetCurrentScheme(name string) error
}
