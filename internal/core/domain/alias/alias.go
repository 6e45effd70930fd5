/*
Package alias defines the core domain entities for name aliases: the table
entry that declares one name a synonym for another, and the host-side entities
(operations and storage cells) that aliases resolve to.
*/
package alias

import (
	"fmt"
	"strings"
)

// Kind says which host namespace an alias lives in.
type Kind string

const (
	// KindOperation aliases a callable.
	KindOperation Kind = "operation"
	// KindValue aliases a mutable storage cell.
	KindValue Kind = "value"
)

// ParseKind maps a table value to a Kind. An empty string means KindOperation,
// which is what the overwhelming majority of table entries are.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(KindOperation):
		return KindOperation, nil
	case string(KindValue):
		return KindValue, nil
	default:
		return "", fmt.Errorf("unknown alias kind %q", s)
	}
}

// UnmarshalText lets yaml and toml decoders accept a kind field directly.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

/*
Entry declares that Name is fully interchangeable with Target. This is the
core domain entity; tables of entries are loaded once at startup.
*/
type Entry struct {
	Name   string `yaml:"alias" toml:"alias"`
	Target string `yaml:"target" toml:"target"`
	Kind   Kind   `yaml:"kind,omitempty" toml:"kind,omitempty"`
	Doc    string `yaml:"doc,omitempty" toml:"doc,omitempty"`
}

// EffectiveKind returns the entry's kind, treating the zero value as an operation.
func (e Entry) EffectiveKind() Kind {
	if e.Kind == "" {
		return KindOperation
	}
	return e.Kind
}

func (e Entry) String() string {
	return fmt.Sprintf("%s -> %s (%s)", e.Name, e.Target, e.EffectiveKind())
}

// Operation is a host callable. Resolving an alias hands back the target's
// Operation itself, never a wrapper around it.
type Operation func(args ...any) (any, error)

// Cell is a host storage location. Value aliases resolve to the target's Cell,
// so a Store through either name is visible through both.
type Cell interface {
	Load() any
	Store(v any) error
}

// Resolved is the outcome of following alias links to a host entity.
type Resolved[T any] struct {
	// Entity is the host operation or cell.
	Entity T
	// Canonical is the name the host knows the entity by.
	Canonical string
	// Chain lists every name visited, starting with the requested one.
	Chain []string
}

// ViaAlias reports whether resolution went through at least one alias.
func (r Resolved[T]) ViaAlias() bool {
	return len(r.Chain) > 1
}
