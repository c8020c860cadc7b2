package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/schemer/internal/domain"
	portsmocks "github.com/renato0307/schemer/internal/ports/mocks"
)

const testVersion = "1.0.0"

func seqs(keys ...string) []domain.KeySequence {
	out := make([]domain.KeySequence, len(keys))
	for i, k := range keys {
		out[i] = domain.MustParseKeySequence(k)
	}
	return out
}

func schemeWith(action domain.Action, keys ...string) *domain.Scheme {
	s := domain.NewScheme()
	s.SetSequences(action, seqs(keys...))
	return s
}

type serviceFixture struct {
	repo    *portsmocks.MockSchemeRepository
	current *portsmocks.MockCurrentSchemeStore
	saved   []*domain.SchemeCollection
}

func newFixture(t *testing.T, stored *domain.SchemeCollection, currentName string) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		repo:    portsmocks.NewMockSchemeRepository(t),
		current: portsmocks.NewMockCurrentSchemeStore(t),
	}
	if stored == nil {
		stored = domain.NewSchemeCollection("")
	}
	f.repo.EXPECT().LoadSchemes(mock.Anything).Return(stored, nil).Once()
	f.current.EXPECT().CurrentScheme().Return(currentName, nil).Once()
	return f
}

// expectSaves accepts any number of saves and records each collection
func (f *serviceFixture) expectSaves() {
	f.repo.EXPECT().SaveSchemes(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, c *domain.SchemeCollection) error {
			f.saved = append(f.saved, c)
			return nil
		}).Maybe()
	f.current.EXPECT().SetCurrentScheme(mock.Anything).Return(nil).Maybe()
}

func (f *serviceFixture) lastSaved(t *testing.T) *domain.SchemeCollection {
	t.Helper()
	require.NotEmpty(t, f.saved)
	return f.saved[len(f.saved)-1]
}

func (f *serviceFixture) service(opts ...SchemeServiceOption) *SchemeService {
	return NewSchemeService(f.repo, f.repo, f.current, testVersion, opts...)
}

func TestSchemeService_FreshLoadUsesFactory(t *testing.T) {
	f := newFixture(t, nil, "")
	service := f.service()

	assert.Equal(t, seqs("Ctrl+T"), service.ShortcutsFor(domain.NewTab))
	assert.Equal(t, domain.DefaultSchemeName, service.CurrentSchemeName())
	assert.Equal(t, []string{domain.DefaultSchemeName}, service.Schemes())
	assert.True(t, service.CurrentScheme().Equal(domain.DefaultScheme()))
}

func TestSchemeService_LoadIsIdempotent(t *testing.T) {
	f := newFixture(t, nil, "")
	service := f.service()

	service.Load(context.Background())
	service.Load(context.Background())
	_ = service.Schemes()
	_ = service.ShortcutsForName("NewTab")
	// LoadSchemes and CurrentScheme are registered with Once()
}

func TestSchemeService_CustomSchemeScenario(t *testing.T) {
	f := newFixture(t, nil, "")
	f.expectSaves()
	service := f.service()
	ctx := context.Background()

	require.Equal(t, seqs("Ctrl+T"), service.ShortcutsFor(domain.NewTab))

	custom := schemeWith(domain.NewTab, "Ctrl+T", "Ctrl+Shift+T")
	name, err := service.SaveScheme(ctx, "Custom", custom)
	require.NoError(t, err)
	assert.Equal(t, "Custom", name)
	assert.True(t, service.Scheme("Custom").Equal(custom))

	service.SetCurrentScheme("Custom")
	assert.ElementsMatch(t, seqs("Ctrl+T", "Ctrl+Shift+T"), service.ShortcutsFor(domain.NewTab))
	assert.ElementsMatch(t, seqs("Ctrl+T", "Ctrl+Shift+T"), service.ShortcutsForName("NewTab"))

	saved := f.lastSaved(t)
	assert.Equal(t, testVersion, saved.Version)
	assert.Contains(t, saved.Schemes, "Custom")
	assert.NotContains(t, saved.Schemes, domain.DefaultSchemeName)
}

func TestSchemeService_SaveFactoryNameUsesUnusedSuffix(t *testing.T) {
	stored := domain.NewSchemeCollection(testVersion)
	stored.Schemes["Default_0"] = schemeWith(domain.Find, "Ctrl+F")

	f := newFixture(t, stored, "")
	f.expectSaves()
	service := f.service()
	ctx := context.Background()

	edited := schemeWith(domain.NewTab, "Alt+T")

	name, err := service.SaveScheme(ctx, domain.DefaultSchemeName, edited)
	require.NoError(t, err)
	assert.Equal(t, "Default_1", name)

	name, err = service.SaveScheme(ctx, domain.DefaultSchemeName, edited)
	require.NoError(t, err)
	assert.Equal(t, "Default_2", name)

	assert.True(t, service.Scheme(domain.DefaultSchemeName).Equal(domain.DefaultScheme()))
	assert.True(t, service.Scheme("Default_0").Equal(schemeWith(domain.Find, "Ctrl+F")))
	assert.True(t, service.Scheme("Default_1").Equal(edited))
}

func TestSchemeService_SaveSchemeStoresCopy(t *testing.T) {
	f := newFixture(t, nil, "")
	f.expectSaves()
	service := f.service()

	custom := schemeWith(domain.NewTab, "Alt+T")
	_, err := service.SaveScheme(context.Background(), "Custom", custom)
	require.NoError(t, err)

	custom.Add(domain.NewTab, domain.MustParseKeySequence("Ctrl+T"))
	service.Scheme("Custom").Add(domain.Find, domain.MustParseKeySequence("Ctrl+F"))

	assert.Equal(t, seqs("Alt+T"), service.Scheme("Custom").Sequences(domain.NewTab))
	assert.Empty(t, service.Scheme("Custom").Sequences(domain.Find))
}

func TestSchemeService_SaveSchemeInvalidName(t *testing.T) {
	repo := portsmocks.NewMockSchemeRepository(t)
	current := portsmocks.NewMockCurrentSchemeStore(t)
	service := NewSchemeService(repo, repo, current, testVersion)

	for _, name := range []string{"", domain.ReservedSchemeName} {
		_, err := service.SaveScheme(context.Background(), name, domain.NewScheme())
		assert.ErrorIs(t, err, domain.ErrInvalidSchemeName)
	}
}

func TestSchemeService_DeleteFactoryIsNoop(t *testing.T) {
	f := newFixture(t, nil, "")
	service := f.service()

	before := service.Schemes()
	require.NoError(t, service.DeleteScheme(context.Background(), domain.DefaultSchemeName))

	assert.Equal(t, before, service.Schemes())
	assert.True(t, service.Scheme(domain.DefaultSchemeName).Equal(domain.DefaultScheme()))
	// no SaveSchemes expectation: nothing was persisted
}

func TestSchemeService_DeleteCurrentResetsToDefault(t *testing.T) {
	stored := domain.NewSchemeCollection(testVersion)
	stored.Schemes["Custom"] = schemeWith(domain.NewTab, "Alt+T")

	f := newFixture(t, stored, "Custom")
	f.repo.EXPECT().SaveSchemes(mock.Anything, mock.Anything).Return(nil).Once()
	f.current.EXPECT().SetCurrentScheme(domain.DefaultSchemeName).Return(nil).Once()
	service := f.service()

	require.Equal(t, "Custom", service.CurrentSchemeName())
	require.NoError(t, service.DeleteScheme(context.Background(), service.CurrentSchemeName()))

	assert.Equal(t, domain.DefaultSchemeName, service.CurrentSchemeName())
	assert.False(t, service.HasScheme("Custom"))
}

func TestSchemeService_DeleteOtherKeepsCurrent(t *testing.T) {
	stored := domain.NewSchemeCollection(testVersion)
	stored.Schemes["Custom"] = schemeWith(domain.NewTab, "Alt+T")
	stored.Schemes["Other"] = schemeWith(domain.NewTab, "Alt+N")

	f := newFixture(t, stored, "Custom")
	f.expectSaves()
	service := f.service()

	require.NoError(t, service.DeleteScheme(context.Background(), "Other"))

	assert.Equal(t, "Custom", service.CurrentSchemeName())
	assert.Equal(t, []string{"Custom", domain.DefaultSchemeName}, service.Schemes())
}

func TestSchemeService_FactoryRegeneration(t *testing.T) {
	modifiedFactory := func() *domain.Scheme {
		return schemeWith(domain.NewTab, "Alt+Shift+T")
	}

	tests := []struct {
		name           string
		storedVersion  string
		persistFactory bool
		regenerated    bool
	}{
		{"version mismatch regenerates", "0.9.0", true, true},
		{"same version keeps stored factory", testVersion, true, false},
		{"stored factory ignored unless persisted", testVersion, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			custom := schemeWith(domain.Find, "Ctrl+Shift+F")
			stored := domain.NewSchemeCollection(tt.storedVersion)
			stored.Schemes[domain.DefaultSchemeName] = modifiedFactory()
			stored.Schemes["Custom"] = custom.Clone()

			f := newFixture(t, stored, "")
			service := f.service(WithPersistFactoryScheme(tt.persistFactory))

			factory := service.Scheme(domain.DefaultSchemeName)
			if tt.regenerated {
				assert.True(t, factory.Equal(domain.DefaultScheme()))
			} else {
				assert.True(t, factory.Equal(modifiedFactory()))
			}
			assert.True(t, service.Scheme("Custom").Equal(custom))
		})
	}
}

func TestSchemeService_PersistFactoryWritesIt(t *testing.T) {
	f := newFixture(t, nil, "")
	f.expectSaves()
	service := f.service(WithPersistFactoryScheme(true))

	require.NoError(t, service.Save(context.Background()))
	assert.Contains(t, f.lastSaved(t).Schemes, domain.DefaultSchemeName)
}

func TestSchemeService_LoadFailuresFallBack(t *testing.T) {
	repo := portsmocks.NewMockSchemeRepository(t)
	current := portsmocks.NewMockCurrentSchemeStore(t)
	repo.EXPECT().LoadSchemes(mock.Anything).Return(nil, errors.New("disk on fire")).Once()
	current.EXPECT().CurrentScheme().Return("", errors.New("bad settings")).Once()

	service := NewSchemeService(repo, repo, current, testVersion)

	assert.Equal(t, []string{domain.DefaultSchemeName}, service.Schemes())
	assert.Equal(t, domain.DefaultSchemeName, service.CurrentSchemeName())
}

func TestSchemeService_UnknownCurrentFallsBack(t *testing.T) {
	f := newFixture(t, nil, "Gone")
	service := f.service()

	assert.Equal(t, domain.DefaultSchemeName, service.CurrentSchemeName())
}

func TestSchemeService_SetCurrentSchemeIgnoresUnknown(t *testing.T) {
	stored := domain.NewSchemeCollection(testVersion)
	stored.Schemes["Custom"] = domain.NewScheme()

	f := newFixture(t, stored, "")
	service := f.service()

	service.SetCurrentScheme("Missing")
	assert.Equal(t, domain.DefaultSchemeName, service.CurrentSchemeName())

	service.SetCurrentScheme("Custom")
	assert.Equal(t, "Custom", service.CurrentSchemeName())
}

func TestSchemeService_SchemesSortedCaseInsensitively(t *testing.T) {
	stored := domain.NewSchemeCollection(testVersion)
	for _, name := range []string{"beta", "alpha", "Alpha", "zed", "Charlie"} {
		stored.Schemes[name] = domain.NewScheme()
	}

	f := newFixture(t, stored, "")
	service := f.service()

	assert.Equal(t,
		[]string{"Alpha", "alpha", "beta", "Charlie", domain.DefaultSchemeName, "zed"},
		service.Schemes())
}

func TestSchemeService_SchemeUnknownIsEmpty(t *testing.T) {
	f := newFixture(t, nil, "")
	service := f.service()

	assert.True(t, service.Scheme("Nope").IsEmpty())
	assert.False(t, service.HasScheme("Nope"))
	assert.Empty(t, service.ShortcutsForName("NotAnAction"))
	assert.True(t, service.IsFactoryScheme(domain.DefaultSchemeName))
	assert.False(t, service.IsFactoryScheme("Custom"))
}

func TestSchemeService_SaveErrors(t *testing.T) {
	t.Run("scheme groups", func(t *testing.T) {
		f := newFixture(t, nil, "")
		f.repo.EXPECT().SaveSchemes(mock.Anything, mock.Anything).Return(errors.New("read-only")).Once()
		service := f.service()

		name, err := service.SaveScheme(context.Background(), "Custom", domain.NewScheme())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save schemes")
		assert.Equal(t, "Custom", name)
	})

	t.Run("current scheme", func(t *testing.T) {
		sentinel := errors.New("locked")
		f := newFixture(t, nil, "")
		f.repo.EXPECT().SaveSchemes(mock.Anything, mock.Anything).Return(nil).Once()
		f.current.EXPECT().SetCurrentScheme(domain.DefaultSchemeName).Return(sentinel).Once()
		service := f.service()

		err := service.Save(context.Background())
		assert.ErrorIs(t, err, sentinel)
	})
}

func TestSchemeService_FactorySchemeIsFresh(t *testing.T) {
	service := NewSchemeService(nil, nil, nil, testVersion)

	first := service.FactoryScheme()
	first.SetSequences(domain.NewTab, nil)
	assert.Equal(t, seqs("Ctrl+T"), service.FactoryScheme().Sequences(domain.NewTab))
}
