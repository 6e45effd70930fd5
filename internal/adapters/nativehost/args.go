package nativehost

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongNumberOfArguments mirrors the host's arity failure.
	ErrWrongNumberOfArguments = errors.New("wrong-number-of-arguments")
	// ErrWrongTypeArgument mirrors the host's type failure.
	ErrWrongTypeArgument = errors.New("wrong-type-argument")
)

// Symbol is an interned name, distinct from a string.
type Symbol string

func (s Symbol) String() string { return string(s) }

// Cons is one association-list pair.
type Cons struct {
	Car any
	Cdr any
}

func (c *Cons) String() string {
	return fmt.Sprintf("(%v . %v)", c.Car, c.Cdr)
}

func arity(name string, args []any, min, max int) error {
	if len(args) < min || (max >= 0 && len(args) > max) {
		return fmt.Errorf("%s: %w: got %d", name, ErrWrongNumberOfArguments, len(args))
	}
	return nil
}

func optional(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func stringArg(name string, args []any, i int) (string, error) {
	switch v := optional(args, i).(type) {
	case string:
		return v, nil
	case Symbol:
		return string(v), nil
	default:
		return "", fmt.Errorf("%s: %w: stringp %v", name, ErrWrongTypeArgument, v)
	}
}

func intArg(name string, args []any, i int) (int, error) {
	switch v := optional(args, i).(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("%s: %w: integerp %v", name, ErrWrongTypeArgument, v)
	}
}

func listArg(name string, args []any, i int) ([]any, error) {
	switch v := optional(args, i).(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	default:
		return nil, fmt.Errorf("%s: %w: listp %v", name, ErrWrongTypeArgument, v)
	}
}

// truthy treats nil and false as the only false values.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// eql compares the way identity-based lookups do; non-comparable values are never equal.
func eql(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
