package ui

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/renato0307/schemer/internal/domain"
)

// teaNamedKeys maps named keys to bubbletea key strings
var teaNamedKeys = map[string]string{
	"Backspace": "backspace",
	"Backtab":   "shift+tab",
	"Del":       "delete",
	"Down":      "down",
	"End":       "end",
	"Enter":     "enter",
	"Esc":       "esc",
	"Home":      "home",
	"Ins":       "insert",
	"Left":      "left",
	"PgDown":    "pgdown",
	"PgUp":      "pgup",
	"Return":    "enter",
	"Right":     "right",
	"Space":     " ",
	"Tab":       "tab",
	"Up":        "up",
}

// navigationKeys accept ctrl and shift in a terminal
var navigationKeys = map[string]bool{
	"down": true, "end": true, "home": true, "left": true,
	"pgdown": true, "pgup": true, "right": true, "up": true,
}

// ctrlPunctuation lists the non-letter keys a terminal reports with ctrl
var ctrlPunctuation = map[rune]bool{'@': true, '\\': true, ']': true, '^': true, '_': true}

// BubbleTeaKey converts a single-chord sequence to the string
// tea.KeyMsg.String() reports for it, such as "ctrl+t" or "alt+left".
// It returns false for multi-chord sequences and chords a terminal cannot
// deliver (Meta, Ctrl+Shift+letter, most Ctrl+punctuation).
func BubbleTeaKey(seq domain.KeySequence) (string, bool) {
	if seq.Len() != 1 {
		return "", false
	}
	chord := seq.Chords()[0]
	if chord.Has(domain.ModMeta) {
		return "", false
	}

	base, ok := teaBaseKey(chord)
	if !ok {
		return "", false
	}
	if chord.Has(domain.ModAlt) {
		return "alt+" + base, true
	}
	return base, true
}

func teaBaseKey(chord domain.Chord) (string, bool) {
	ctrl := chord.Has(domain.ModCtrl)
	shift := chord.Has(domain.ModShift)

	if name, ok := teaFunctionKey(chord.Key); ok {
		if ctrl || shift {
			return "", false
		}
		return name, true
	}

	if name, ok := teaNamedKeys[chord.Key]; ok {
		switch {
		case navigationKeys[name]:
			prefix := ""
			if ctrl {
				prefix += "ctrl+"
			}
			if shift {
				prefix += "shift+"
			}
			return prefix + name, true
		case name == "tab" && shift && !ctrl:
			return "shift+tab", true
		case ctrl || shift:
			return "", false
		}
		return name, true
	}

	r, size := utf8.DecodeRuneInString(chord.Key)
	if size != len(chord.Key) {
		// named keys without a terminal equivalent (Pause, Menu, ...)
		return "", false
	}

	switch {
	case ctrl && shift:
		return "", false
	case ctrl && unicode.IsLetter(r) && r < unicode.MaxASCII:
		return "ctrl+" + string(unicode.ToLower(r)), true
	case ctrl && ctrlPunctuation[r]:
		return "ctrl+" + string(r), true
	case ctrl:
		return "", false
	case shift && unicode.IsLetter(r):
		return string(unicode.ToUpper(r)), true
	case shift:
		return "", false
	default:
		return string(unicode.ToLower(r)), true
	}
}

// teaFunctionKey handles F1 to F20, the range bubbletea names
func teaFunctionKey(name string) (string, bool) {
	if len(name) < 2 || name[0] != 'F' {
		return "", false
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil || n < 1 {
		return "", false
	}
	if n > 20 {
		return "", false
	}
	return "f" + strings.TrimPrefix(name, "F"), true
}
