package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/renato0307/schemer/internal/domain"
	"github.com/renato0307/schemer/internal/logging"
	"github.com/renato0307/schemer/internal/ports"
)

// SchemeService owns every known scheme and the name of the active one.
// State is read from the ports on first use and written back by Save.
// It is not safe for concurrent use.
type SchemeService struct {
	currentStore   ports.CurrentSchemeStore
	factory        func() *domain.Scheme
	persistFactory bool
	schemeReader   ports.SchemeReader
	schemeWriter   ports.SchemeWriter
	version        string

	currentName string
	loaded      bool
	schemes     map[string]*domain.Scheme
}

// SchemeServiceOption configures a SchemeService
type SchemeServiceOption func(*SchemeService)

// WithPersistFactoryScheme keeps the factory scheme in storage instead of
// regenerating it on every load
func WithPersistFactoryScheme(persist bool) SchemeServiceOption {
	return func(s *SchemeService) {
		s.persistFactory = persist
	}
}

// WithFactory replaces the factory scheme generator
func WithFactory(factory func() *domain.Scheme) SchemeServiceOption {
	return func(s *SchemeService) {
		s.factory = factory
	}
}

// NewSchemeService creates a new SchemeService. appVersion tags saved
// collections; loading a collection tagged differently regenerates the
// factory scheme.
func NewSchemeService(
	schemeReader ports.SchemeReader,
	schemeWriter ports.SchemeWriter,
	currentStore ports.CurrentSchemeStore,
	appVersion string,
	opts ...SchemeServiceOption,
) *SchemeService {
	s := &SchemeService{
		currentStore: currentStore,
		factory:      domain.DefaultScheme,
		schemeReader: schemeReader,
		schemeWriter: schemeWriter,
		version:      appVersion,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads schemes and the current name from storage. Only the first call
// has an effect. Storage failures are logged and replaced by defaults.
func (s *SchemeService) Load(ctx context.Context) {
	if s.loaded {
		return
	}

	collection, err := s.schemeReader.LoadSchemes(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load schemes, starting from defaults", "error", err)
		collection = nil
	}
	if collection == nil {
		collection = domain.NewSchemeCollection("")
	}

	s.schemes = make(map[string]*domain.Scheme, len(collection.Schemes)+1)
	for name, scheme := range collection.Schemes {
		if scheme == nil {
			scheme = domain.NewScheme()
		}
		s.schemes[name] = scheme
	}

	if !s.persistFactory {
		delete(s.schemes, domain.DefaultSchemeName)
	}

	_, hasFactory := s.schemes[domain.DefaultSchemeName]
	if collection.Version != s.version || !hasFactory {
		logging.Logger.Debug("Regenerating factory scheme",
			"stored_version", collection.Version,
			"running_version", s.version,
			"had_factory", hasFactory)
		s.schemes[domain.DefaultSchemeName] = s.factory()
	}

	currentName, err := s.currentStore.CurrentScheme()
	if err != nil {
		logging.Logger.Warn("Failed to read current scheme, using default", "error", err)
		currentName = ""
	}
	if _, ok := s.schemes[currentName]; !ok {
		if currentName != "" {
			logging.Logger.Info("Current scheme not found, falling back to default", "scheme", currentName)
		}
		currentName = domain.DefaultSchemeName
	}
	s.currentName = currentName

	s.loaded = true
	logging.Logger.Debug("Schemes loaded", "count", len(s.schemes), "current", s.currentName)
}

func (s *SchemeService) ensureLoaded() {
	s.Load(context.Background())
}

// Scheme returns a copy of the named scheme, or an empty scheme when absent
func (s *SchemeService) Scheme(name string) *domain.Scheme {
	s.ensureLoaded()
	return s.schemes[name].Clone()
}

// HasScheme reports whether a scheme with this name exists
func (s *SchemeService) HasScheme(name string) bool {
	s.ensureLoaded()
	_, ok := s.schemes[name]
	return ok
}

// Schemes returns every scheme name sorted case-insensitively
func (s *SchemeService) Schemes() []string {
	s.ensureLoaded()

	names := make([]string, 0, len(s.schemes))
	for name := range s.schemes {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a), strings.ToLower(b)),
			strings.Compare(a, b),
		)
	})
	return names
}

// CurrentSchemeName returns the name of the active scheme
func (s *SchemeService) CurrentSchemeName() string {
	s.ensureLoaded()
	return s.currentName
}

// CurrentScheme returns a copy of the active scheme
func (s *SchemeService) CurrentScheme() *domain.Scheme {
	return s.Scheme(s.CurrentSchemeName())
}

// SetCurrentScheme activates an existing scheme. Unknown names are ignored.
// The change is written by the next Save.
func (s *SchemeService) SetCurrentScheme(name string) {
	s.ensureLoaded()

	if _, ok := s.schemes[name]; !ok {
		logging.Logger.Debug("Ignoring unknown current scheme", "scheme", name)
		return
	}
	s.currentName = name
}

// IsFactoryScheme reports whether name is the factory scheme
func (s *SchemeService) IsFactoryScheme(name string) bool {
	return name == domain.DefaultSchemeName
}

// FactoryScheme returns freshly generated factory bindings
func (s *SchemeService) FactoryScheme() *domain.Scheme {
	return s.factory()
}

// SaveScheme stores a copy of scheme under name and persists everything.
// The factory scheme is never overwritten: saving under its name stores the
// scheme under the first unused "Default_<n>" instead. The effective name is
// returned, also when persisting fails.
func (s *SchemeService) SaveScheme(ctx context.Context, name string, scheme *domain.Scheme) (string, error) {
	if err := domain.ValidateSchemeName(name); err != nil {
		return "", err
	}

	s.Load(ctx)

	effective := name
	if s.IsFactoryScheme(name) {
		effective = s.unusedFactoryCopyName()
		logging.Logger.Info("Saving factory scheme under a new name", "scheme", effective)
	}

	s.schemes[effective] = scheme.Clone()
	logging.Logger.Debug("Scheme stored", "scheme", effective, "bindings", scheme.Len())

	if err := s.Save(ctx); err != nil {
		return effective, err
	}
	return effective, nil
}

func (s *SchemeService) unusedFactoryCopyName() string {
	for n := 0; ; n++ {
		candidate := fmt.Sprintf("%s_%d", domain.DefaultSchemeName, n)
		if _, exists := s.schemes[candidate]; !exists {
			return candidate
		}
	}
}

// DeleteScheme removes a scheme and persists. Deleting the factory scheme is
// a no-op. Deleting the active scheme makes the factory scheme active.
func (s *SchemeService) DeleteScheme(ctx context.Context, name string) error {
	s.Load(ctx)

	if s.IsFactoryScheme(name) {
		logging.Logger.Debug("Refusing to delete factory scheme")
		return nil
	}
	if _, ok := s.schemes[name]; !ok {
		return nil
	}

	delete(s.schemes, name)
	if s.currentName == name {
		s.currentName = domain.DefaultSchemeName
	}
	logging.Logger.Info("Scheme deleted", "scheme", name, "current", s.currentName)

	return s.Save(ctx)
}

// Save writes every scheme tagged with the running version, then the
// current scheme name. The factory scheme is written only when persisting
// it was requested.
func (s *SchemeService) Save(ctx context.Context) error {
	s.Load(ctx)

	collection := domain.NewSchemeCollection(s.version)
	for name, scheme := range s.schemes {
		if s.IsFactoryScheme(name) && !s.persistFactory {
			continue
		}
		collection.Schemes[name] = scheme.Clone()
	}

	if err := s.schemeWriter.SaveSchemes(ctx, collection); err != nil {
		logging.Logger.Error("Failed to save schemes", "error", err)
		return fmt.Errorf("failed to save schemes: %w", err)
	}

	if err := s.currentStore.SetCurrentScheme(s.currentName); err != nil {
		logging.Logger.Error("Failed to save current scheme", "scheme", s.currentName, "error", err)
		return fmt.Errorf("failed to save current scheme: %w", err)
	}

	logging.Logger.Debug("Schemes saved", "count", len(collection.Schemes), "current", s.currentName)
	return nil
}

// ShortcutsFor returns the active scheme's sequences for an action
func (s *SchemeService) ShortcutsFor(action domain.Action) []domain.KeySequence {
	s.ensureLoaded()
	return s.schemes[s.currentName].Sequences(action)
}

// ShortcutsForName is ShortcutsFor with the action given by name.
// Unknown names have no shortcuts.
func (s *SchemeService) ShortcutsForName(name string) []domain.KeySequence {
	action := domain.ActionByName(name)
	if action == domain.NoAction {
		return nil
	}
	return s.ShortcutsFor(action)
}
