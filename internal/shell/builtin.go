package shell

import (
	"fmt"
	"sort"
	"strings"
)

// Builtin is a command handled inside the controller.
type Builtin int

const (
	BuiltinExit Builtin = iota + 1
	BuiltinClear
)

func (b Builtin) String() string {
	switch b {
	case BuiltinExit:
		return "exit"
	case BuiltinClear:
		return "clear"
	default:
		return fmt.Sprintf("builtin(%d)", int(b))
	}
}

// ParseBuiltin maps a kind name from config to a Builtin.
func ParseBuiltin(kind string) (Builtin, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "exit":
		return BuiltinExit, nil
	case "clear":
		return BuiltinClear, nil
	default:
		return 0, fmt.Errorf("unknown builtin kind %q", kind)
	}
}

// Builtins maps command names to builtins.
type Builtins struct {
	names map[string]Builtin
}

// DefaultBuiltins registers exit and clear under their own names.
func DefaultBuiltins() *Builtins {
	b := &Builtins{names: map[string]Builtin{}}
	b.Register("exit", BuiltinExit)
	b.Register("clear", BuiltinClear)
	return b
}

// Register binds name to kind, replacing any earlier binding.
func (b *Builtins) Register(name string, kind Builtin) {
	b.names[name] = kind
}

// RegisterNames binds each name to the kind named by its value.
func (b *Builtins) RegisterNames(m map[string]string) error {
	for name, kind := range m {
		k, err := ParseBuiltin(kind)
		if err != nil {
			return fmt.Errorf("builtin %q: %w", name, err)
		}
		b.Register(name, k)
	}
	return nil
}

// Lookup returns the builtin bound to name.
func (b *Builtins) Lookup(name string) (Builtin, bool) {
	k, ok := b.names[name]
	return k, ok
}

// Names returns the registered names sorted.
func (b *Builtins) Names() []string {
	out := make([]string, 0, len(b.names))
	for n := range b.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
