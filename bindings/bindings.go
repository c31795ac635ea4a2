package bindings

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keytap/input"
	"github.com/dshills/keytap/key"
)

// file is the on-disk TOML shape.
type file struct {
	Bindings []entry `toml:"binding"`
}

// entry is one [[binding]] table.
type entry struct {
	Key    string `toml:"key"`
	Action string `toml:"action"`
	On     string `toml:"on"`
}

// Binding is a resolved key binding.
type Binding struct {
	// Code is the resolved key code.
	Code key.Code

	// Action names the action to run.
	Action string

	// On selects the transitions that trigger the action.
	On input.Notify
}

// Set is an ordered collection of resolved bindings.
type Set struct {
	bindings []Binding
}

// Bindings returns the bindings in file order.
func (s *Set) Bindings() []Binding {
	out := make([]Binding, len(s.bindings))
	copy(out, s.bindings)
	return out
}

// Len returns the number of bindings.
func (s *Set) Len() int {
	return len(s.bindings)
}

// Load reads and resolves a binding file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bindings file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse resolves binding data. Every entry must name a key from the
// static table or a raw numeric code, and carry an action.
func Parse(data []byte) (*Set, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing bindings: %w", err)
	}

	set := &Set{bindings: make([]Binding, 0, len(f.Bindings))}
	for i, e := range f.Bindings {
		b, err := resolve(e)
		if err != nil {
			return nil, &ParseError{Index: i, Key: e.Key, Err: err}
		}
		set.bindings = append(set.bindings, b)
	}
	return set, nil
}

// resolve converts a raw entry to a Binding.
func resolve(e entry) (Binding, error) {
	if strings.TrimSpace(e.Action) == "" {
		return Binding{}, ErrMissingAction
	}

	code, err := resolveKey(e.Key)
	if err != nil {
		return Binding{}, err
	}

	on, err := resolveOn(e.On)
	if err != nil {
		return Binding{}, err
	}

	return Binding{Code: code, Action: e.Action, On: on}, nil
}

// resolveKey accepts a name from the key table or a raw numeric code.
// Raw codes allow binding keys the table does not name.
func resolveKey(name string) (key.Code, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return key.None, ErrUnknownKey
	}
	if c, ok := key.FromName(name); ok {
		return c, nil
	}
	if n, err := strconv.ParseUint(name, 10, 16); err == nil {
		return key.Code(n), nil
	}
	return key.None, ErrUnknownKey
}

func resolveOn(on string) (input.Notify, error) {
	switch strings.ToLower(strings.TrimSpace(on)) {
	case "", "both":
		return input.NotifyBoth, nil
	case "press":
		return input.NotifyPress, nil
	case "release":
		return input.NotifyRelease, nil
	default:
		return 0, ErrInvalidOn
	}
}
