package nativehost

import (
	"fmt"
	"reflect"
)

func (h *Host) installLists() {
	h.DefineOperation("assoc", assocBy("assoc", equal))
	h.DefineOperation("assq", assocBy("assq", eql))
	h.DefineOperation("member", member)
	h.DefineOperation("nth", nth)
	h.DefineOperation("reverse", reverse)
	h.DefineOperation("delete-dups", deleteDups)
	h.DefineOperation("length", length)
}

// equal compares structurally.
func equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// assocBy takes (key alist). Elements that are not pairs are skipped.
func assocBy(name string, same func(a, b any) bool) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		if err := arity(name, args, 2, 2); err != nil {
			return nil, err
		}
		alist, err := listArg(name, args, 1)
		if err != nil {
			return nil, err
		}
		for _, el := range alist {
			pair, ok := el.(*Cons)
			if ok && same(args[0], pair.Car) {
				return pair, nil
			}
		}
		return nil, nil
	}
}

// member returns the tail of list starting at the first element equal to elt.
func member(args ...any) (any, error) {
	if err := arity("member", args, 2, 2); err != nil {
		return nil, err
	}
	list, err := listArg("member", args, 1)
	if err != nil {
		return nil, err
	}
	for i, el := range list {
		if equal(args[0], el) {
			return list[i:], nil
		}
	}
	return nil, nil
}

func nth(args ...any) (any, error) {
	if err := arity("nth", args, 2, 2); err != nil {
		return nil, err
	}
	n, err := intArg("nth", args, 0)
	if err != nil {
		return nil, err
	}
	list, err := listArg("nth", args, 1)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	if n >= len(list) {
		return nil, nil
	}
	return list[n], nil
}

func reverse(args ...any) (any, error) {
	if err := arity("reverse", args, 1, 1); err != nil {
		return nil, err
	}
	if s, ok := args[0].(string); ok {
		runes := []rune(s)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes), nil
	}
	list, err := listArg("reverse", args, 0)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(list))
	for i, el := range list {
		out[len(list)-1-i] = el
	}
	return out, nil
}

// deleteDups keeps the first occurrence of each element.
func deleteDups(args ...any) (any, error) {
	if err := arity("delete-dups", args, 1, 1); err != nil {
		return nil, err
	}
	list, err := listArg("delete-dups", args, 0)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(list))
	for _, el := range list {
		dup := false
		for _, kept := range out {
			if equal(el, kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, el)
		}
	}
	return out, nil
}

func length(args ...any) (any, error) {
	if err := arity("length", args, 1, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case nil:
		return 0, nil
	case string:
		return len([]rune(v)), nil
	case []any:
		return len(v), nil
	case *HashTable:
		return v.Len(), nil
	default:
		return nil, fmt.Errorf("length: %w: sequencep %v", ErrWrongTypeArgument, v)
	}
}
