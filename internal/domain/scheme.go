package domain

import (
	"fmt"
	"slices"
)

// DefaultSchemeName is the name of the factory scheme.
const DefaultSchemeName = "Default"

// ReservedSchemeName is the section name the groups file keeps for top-level keys.
const ReservedSchemeName = "DEFAULT"

// ValidateSchemeName rejects names a scheme cannot be stored under.
func ValidateSchemeName(name string) error {
	switch name {
	case "":
		return fmt.Errorf("%w: empty name", ErrInvalidSchemeName)
	case ReservedSchemeName:
		return fmt.Errorf("%w: %q is reserved", ErrInvalidSchemeName, name)
	}
	return nil
}

// Scheme maps actions to an ordered list of key sequences.
// A scheme has no name of its own; the store it is kept in names it.
type Scheme struct {
	bindings map[Action][]KeySequence
}

// NewScheme creates an empty scheme.
func NewScheme() *Scheme {
	return &Scheme{bindings: make(map[Action][]KeySequence)}
}

// Sequences returns the sequences bound to an action, in binding order.
func (s *Scheme) Sequences(a Action) []KeySequence {
	if s == nil {
		return nil
	}
	return slices.Clone(s.bindings[a])
}

// SetSequences replaces every binding of an action. Empty sequences and
// actions outside the catalog are dropped.
func (s *Scheme) SetSequences(a Action, seqs []KeySequence) {
	if !a.Valid() {
		return
	}
	s.ensure()
	delete(s.bindings, a)
	for _, seq := range seqs {
		s.Add(a, seq)
	}
}

// Add appends a sequence to an action's bindings.
func (s *Scheme) Add(a Action, seq KeySequence) {
	if seq.IsEmpty() || !a.Valid() {
		return
	}
	s.ensure()
	s.bindings[a] = append(s.bindings[a], seq)
}

// Actions returns the actions that have at least one binding, in catalog order.
func (s *Scheme) Actions() []Action {
	if s == nil {
		return nil
	}
	actions := make([]Action, 0, len(s.bindings))
	for a, seqs := range s.bindings {
		if len(seqs) > 0 {
			actions = append(actions, a)
		}
	}
	slices.Sort(actions)
	return actions
}

// Len returns the total number of bound sequences.
func (s *Scheme) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, seqs := range s.bindings {
		n += len(seqs)
	}
	return n
}

// IsEmpty reports whether no sequence is bound.
func (s *Scheme) IsEmpty() bool {
	return s.Len() == 0
}

// Clone returns a deep copy.
func (s *Scheme) Clone() *Scheme {
	clone := NewScheme()
	if s == nil {
		return clone
	}
	for a, seqs := range s.bindings {
		if len(seqs) > 0 {
			clone.bindings[a] = slices.Clone(seqs)
		}
	}
	return clone
}

// Equal reports whether both schemes bind every action to the same multiset
// of sequences. Binding order is ignored.
func (s *Scheme) Equal(other *Scheme) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, a := range s.Actions() {
		if !sameMultiset(s.bindings[a], other.bindings[a]) {
			return false
		}
	}
	return true
}

func (s *Scheme) ensure() {
	if s.bindings == nil {
		s.bindings = make(map[Action][]KeySequence)
	}
}

func sameMultiset(a, b []KeySequence) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[KeySequence]int, len(a))
	for _, seq := range a {
		counts[seq]++
	}
	for _, seq := range b {
		if counts[seq] == 0 {
			return false
		}
		counts[seq]--
	}
	return true
}

// SchemeCollection is what repositories load and save.
type SchemeCollection struct {
	// Version is the application version that wrote the collection.
	Version string
	Schemes map[string]*Scheme
}

// NewSchemeCollection creates an empty collection.
func NewSchemeCollection(version string) *SchemeCollection {
	return &SchemeCollection{
		Version: version,
		Schemes: make(map[string]*Scheme),
	}
}
