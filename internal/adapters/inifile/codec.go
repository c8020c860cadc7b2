package inifile

import (
	"bytes"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/go-ini/ini"

	"github.com/renato0307/schemer/internal/domain"
	"github.com/renato0307/schemer/internal/logging"
)

// VersionKey is the top-level key holding the version that wrote the file
const VersionKey = "appVersion"

// loadOptions keeps '#' and ';' as part of values so chords like Ctrl+; survive.
// A trailing '\' is a key (Ctrl+\), not a line continuation.
var loadOptions = ini.LoadOptions{
	IgnoreContinuation:  true,
	IgnoreInlineComment: true,
	KeyValueDelimiters:  "=",
}

// Marshal encodes a collection as INI: one section per scheme, keys
// "<index>_<ActionName>" numbered per section in catalog then binding order.
func Marshal(collection *domain.SchemeCollection) ([]byte, error) {
	f := ini.Empty(loadOptions)

	f.Section(ini.DefaultSection).Key(VersionKey).SetValue(collection.Version)

	names := make([]string, 0, len(collection.Schemes))
	for name := range collection.Schemes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sec, err := f.NewSection(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create section %q: %w", name, err)
		}

		index := 0
		scheme := collection.Schemes[name]
		for _, action := range scheme.Actions() {
			for _, seq := range scheme.Sequences(action) {
				key := fmt.Sprintf("%d_%s", index, action.Name())
				if _, err := sec.NewKey(key, seq.String()); err != nil {
					return nil, fmt.Errorf("failed to write key %q: %w", key, err)
				}
				index++
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode schemes: %w", err)
	}
	return buf.Bytes(), nil
}

type entry struct {
	index    int
	numbered bool
	action   domain.Action
	seq      domain.KeySequence
}

// Unmarshal decodes an INI scheme groups file. Malformed keys, unknown action
// names and unparseable chords are skipped, never fatal.
func Unmarshal(data []byte) (*domain.SchemeCollection, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schemes: %w", err)
	}

	collection := domain.NewSchemeCollection(f.Section(ini.DefaultSection).Key(VersionKey).String())

	for _, name := range f.SectionStrings() {
		if name == ini.DefaultSection {
			continue
		}
		sec, err := f.GetSection(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read section %q: %w", name, err)
		}
		collection.Schemes[name] = decodeSection(name, sec)
	}

	return collection, nil
}

func decodeSection(name string, sec *ini.Section) *domain.Scheme {
	entries := make([]entry, 0, len(sec.Keys()))

	for _, k := range sec.Keys() {
		parts := strings.SplitN(k.Name(), "_", 2)
		if len(parts) < 2 {
			logging.Logger.Debug("Skipping key without index", "scheme", name, "key", k.Name())
			continue
		}

		action := domain.ActionByName(parts[1])
		if action == domain.NoAction {
			logging.Logger.Warn("Skipping unknown action", "scheme", name, "key", k.Name())
			continue
		}

		seq, err := domain.ParseKeySequence(k.String())
		if err != nil {
			logging.Logger.Warn("Skipping unparseable shortcut",
				"scheme", name, "key", k.Name(), "value", k.String(), "error", err)
			continue
		}

		index, err := strconv.Atoi(parts[0])
		entries = append(entries, entry{
			index:    index,
			numbered: err == nil,
			action:   action,
			seq:      seq,
		})
	}

	// numbered keys first in index order, the rest in file order
	slices.SortStableFunc(entries, func(a, b entry) int {
		switch {
		case a.numbered && b.numbered:
			return a.index - b.index
		case a.numbered:
			return -1
		case b.numbered:
			return 1
		default:
			return 0
		}
	})

	scheme := domain.NewScheme()
	for _, e := range entries {
		scheme.Add(e.action, e.seq)
	}
	return scheme
}
