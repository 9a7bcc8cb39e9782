package types

import (
	"errors"
	"fmt"
	"sort"
)

// Key names follow the browser KeyboardEvent.key convention: arrows are
// "ArrowUp" and friends, printable keys are their lower-case character.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// ControlBinding maps the four logical directions to input key names.
type ControlBinding struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// ControlSchemes are the named bindings a player can pick.
var ControlSchemes = map[string]ControlBinding{
	"UDLR": {Up: KeyArrowUp, Left: KeyArrowLeft, Down: KeyArrowDown, Right: KeyArrowRight},
	"WASD": {Up: "w", Left: "a", Down: "s", Right: "d"},
	"IJKL": {Up: "i", Left: "j", Down: "k", Right: "l"},
	"HJKL": {Up: "k", Left: "h", Down: "j", Right: "l"},
}

// SchemeNames returns the known scheme names, sorted.
func SchemeNames() []string {
	names := make([]string, 0, len(ControlSchemes))
	for name := range ControlSchemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupScheme returns the binding registered under name.
func LookupScheme(name string) (ControlBinding, error) {
	b, ok := ControlSchemes[name]
	if !ok {
		return ControlBinding{}, fmt.Errorf("unknown control scheme %q (known: %v)", name, SchemeNames())
	}
	return b, nil
}

// Key returns the key bound to d.
func (b ControlBinding) Key(d Direction) string {
	switch d {
	case Up:
		return b.Up
	case Down:
		return b.Down
	case Left:
		return b.Left
	case Right:
		return b.Right
	default:
		return ""
	}
}

// Lookup resolves a key name to the direction it is bound to.
func (b ControlBinding) Lookup(key string) (Direction, bool) {
	if key == "" {
		return None, false
	}
	for _, d := range Directions {
		if b.Key(d) == key {
			return d, true
		}
	}
	return None, false
}

// Validate requires four non-empty, distinct keys.
func (b ControlBinding) Validate() error {
	seen := make(map[string]Direction, 4)
	for _, d := range Directions {
		key := b.Key(d)
		if key == "" {
			return fmt.Errorf("no key bound to %s", d)
		}
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("key %q bound to both %s and %s", key, prev, d)
		}
		seen[key] = d
	}
	return nil
}

// IsZero reports whether no key is bound at all.
func (b ControlBinding) IsZero() bool {
	return b == ControlBinding{}
}

var errEmptyBinding = errors.New("empty control binding")

// ResolveBinding picks a custom binding when one is given, otherwise the
// named scheme.
func ResolveBinding(scheme string, custom ControlBinding) (ControlBinding, error) {
	if !custom.IsZero() {
		if err := custom.Validate(); err != nil {
			return ControlBinding{}, err
		}
		return custom, nil
	}
	if scheme == "" {
		return ControlBinding{}, errEmptyBinding
	}
	return LookupScheme(scheme)
}
