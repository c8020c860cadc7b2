package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Modifier is a bit mask of keyboard modifiers.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
	ModMeta
)

// ModNone indicates no modifier is held.
const ModNone Modifier = 0

// MaxChords is the maximum number of chords in a KeySequence.
const MaxChords = 4

var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModMeta, "Meta"},
}

var modifierByName = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"shift":   ModShift,
	"meta":    ModMeta,
	"cmd":     ModMeta,
	"super":   ModMeta,
	"win":     ModMeta,
}

// namedKeys maps lowercase aliases to canonical key names.
var namedKeys = map[string]string{
	"esc":       "Esc",
	"escape":    "Esc",
	"tab":       "Tab",
	"backtab":   "Backtab",
	"backspace": "Backspace",
	"return":    "Return",
	"enter":     "Enter",
	"ins":       "Ins",
	"insert":    "Ins",
	"del":       "Del",
	"delete":    "Del",
	"pause":     "Pause",
	"print":     "Print",
	"sysreq":    "SysReq",
	"home":      "Home",
	"end":       "End",
	"left":      "Left",
	"up":        "Up",
	"right":     "Right",
	"down":      "Down",
	"pgup":      "PgUp",
	"pageup":    "PgUp",
	"pgdown":    "PgDown",
	"pgdn":      "PgDown",
	"pagedown":  "PgDown",
	"space":     "Space",
	"menu":      "Menu",
	"help":      "Help",
	"back":      "Back",
	"forward":   "Forward",
}

// Chord is a single key press with its modifiers, e.g. Ctrl+Shift+T.
type Chord struct {
	Modifiers Modifier
	Key       string
}

// String returns the portable text form of the chord.
func (c Chord) String() string {
	var sb strings.Builder
	for _, m := range modifierOrder {
		if c.Modifiers&m.mod != 0 {
			sb.WriteString(m.name)
			sb.WriteByte('+')
		}
	}
	sb.WriteString(c.Key)
	return sb.String()
}

// Has reports whether the chord holds the given modifier.
func (c Chord) Has(m Modifier) bool {
	return c.Modifiers&m == m
}

// KeySequence is a comparable value of one to MaxChords chords.
// The zero value is the empty sequence.
type KeySequence struct {
	chords [MaxChords]Chord
	count  uint8
}

// NewKeySequence builds a sequence from already normalized chords.
func NewKeySequence(chords ...Chord) (KeySequence, error) {
	var seq KeySequence
	if len(chords) == 0 {
		return seq, fmt.Errorf("%w: no chords", ErrInvalidKeySequence)
	}
	if len(chords) > MaxChords {
		return seq, fmt.Errorf("%w: more than %d chords", ErrInvalidKeySequence, MaxChords)
	}
	for i, c := range chords {
		key, err := normalizeKey(c.Key)
		if err != nil {
			return KeySequence{}, err
		}
		seq.chords[i] = Chord{Modifiers: c.Modifiers, Key: key}
	}
	seq.count = uint8(len(chords))
	return seq, nil
}

// ParseKeySequence parses the portable text form, e.g. "Ctrl+T" or
// "Ctrl+K, Ctrl+C". Modifier and key names are case-insensitive.
func ParseKeySequence(s string) (KeySequence, error) {
	parts := splitChords(s)
	if len(parts) > MaxChords {
		return KeySequence{}, fmt.Errorf("%w: %q has more than %d chords", ErrInvalidKeySequence, s, MaxChords)
	}

	chords := make([]Chord, 0, len(parts))
	for _, part := range parts {
		c, err := parseChord(part)
		if err != nil {
			return KeySequence{}, fmt.Errorf("parsing %q: %w", s, err)
		}
		chords = append(chords, c)
	}
	return NewKeySequence(chords...)
}

// MustParseKeySequence is like ParseKeySequence but panics on error.
// Intended for built-in tables.
func MustParseKeySequence(s string) KeySequence {
	seq, err := ParseKeySequence(s)
	if err != nil {
		panic(err)
	}
	return seq
}

// Len returns the number of chords.
func (k KeySequence) Len() int {
	return int(k.count)
}

// IsEmpty reports whether the sequence has no chords.
func (k KeySequence) IsEmpty() bool {
	return k.count == 0
}

// Chords returns a copy of the chords in order.
func (k KeySequence) Chords() []Chord {
	out := make([]Chord, k.count)
	copy(out, k.chords[:k.count])
	return out
}

// String returns the portable text form. Chords are separated by ", ".
func (k KeySequence) String() string {
	parts := make([]string, k.count)
	for i := range parts {
		parts[i] = k.chords[i].String()
	}
	return strings.Join(parts, ", ")
}

// MarshalText implements encoding.TextMarshaler.
func (k KeySequence) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *KeySequence) UnmarshalText(text []byte) error {
	seq, err := ParseKeySequence(string(text))
	if err != nil {
		return err
	}
	*k = seq
	return nil
}

// splitChords splits on the ", " separator. A comma directly after '+' or at
// the start of a chord is the comma key itself.
func splitChords(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != ',' {
			continue
		}
		chord := strings.TrimSpace(s[start:i])
		if chord == "" || strings.HasSuffix(chord, "+") {
			continue
		}
		parts = append(parts, chord)
		start = i + 1
	}
	return append(parts, strings.TrimSpace(s[start:]))
}

func parseChord(s string) (Chord, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Chord{}, fmt.Errorf("%w: empty chord", ErrInvalidKeySequence)
	}

	var keyPart, modPart string
	switch {
	case s == "+":
		keyPart = s
	case strings.HasSuffix(s, "++"):
		keyPart = "+"
		modPart = s[:len(s)-2]
	case strings.Contains(s, "+"):
		i := strings.LastIndex(s, "+")
		keyPart = s[i+1:]
		modPart = s[:i]
	default:
		keyPart = s
	}

	var mods Modifier
	if modPart != "" {
		for _, name := range strings.Split(modPart, "+") {
			m, ok := modifierByName[strings.ToLower(strings.TrimSpace(name))]
			if !ok {
				return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidKeySequence, name)
			}
			mods |= m
		}
	}

	key, err := normalizeKey(keyPart)
	if err != nil {
		return Chord{}, err
	}
	return Chord{Modifiers: mods, Key: key}, nil
}

func normalizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("%w: missing key", ErrInvalidKeySequence)
	}

	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return "", fmt.Errorf("%w: unprintable key %q", ErrInvalidKeySequence, key)
		}
		return string(unicode.ToUpper(r)), nil
	}

	lower := strings.ToLower(key)
	if name, ok := namedKeys[lower]; ok {
		return name, nil
	}
	if lower[0] == 'f' {
		if n, err := strconv.Atoi(lower[1:]); err == nil && n >= 1 && n <= 35 {
			return "F" + strconv.Itoa(n), nil
		}
	}
	return "", fmt.Errorf("%w: unknown key %q", ErrInvalidKeySequence, key)
}
