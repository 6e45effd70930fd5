package nativehost

import (
	"fmt"
	"sync"
)

// HashTable is a mutable key/value table. Keys must be comparable scalars.
type HashTable struct {
	mu sync.RWMutex
	m  map[any]any
}

// Len reports the number of entries.
func (t *HashTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.m)
}

func (h *Host) installHashTables() {
	h.DefineOperation("make-hash-table", makeHashTable)
	h.DefineOperation("puthash", puthash)
	h.DefineOperation("gethash", gethash)
	h.DefineOperation("remhash", remhash)
	h.DefineOperation("clrhash", clrhash)
	h.DefineOperation("hash-table-count", hashTableCount)
}

func makeHashTable(args ...any) (any, error) {
	return &HashTable{m: make(map[any]any)}, nil
}

func tableArg(name string, args []any, i int) (*HashTable, error) {
	t, ok := optional(args, i).(*HashTable)
	if !ok {
		return nil, fmt.Errorf("%s: %w: hash-table-p %v", name, ErrWrongTypeArgument, optional(args, i))
	}
	return t, nil
}

func keyArg(name string, args []any, i int) (any, error) {
	switch k := optional(args, i).(type) {
	case nil, string, int, int64, float64, bool, Symbol:
		return k, nil
	default:
		return nil, fmt.Errorf("%s: %w: unhashable key %v", name, ErrWrongTypeArgument, k)
	}
}

// puthash takes (key value table) and returns value.
func puthash(args ...any) (any, error) {
	if err := arity("puthash", args, 3, 3); err != nil {
		return nil, err
	}
	key, err := keyArg("puthash", args, 0)
	if err != nil {
		return nil, err
	}
	t, err := tableArg("puthash", args, 2)
	if err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[key] = args[1]
	return args[1], nil
}

// gethash takes (key table [default]).
func gethash(args ...any) (any, error) {
	if err := arity("gethash", args, 2, 3); err != nil {
		return nil, err
	}
	key, err := keyArg("gethash", args, 0)
	if err != nil {
		return nil, err
	}
	t, err := tableArg("gethash", args, 1)
	if err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if v, ok := t.m[key]; ok {
		return v, nil
	}
	return optional(args, 2), nil
}

func remhash(args ...any) (any, error) {
	if err := arity("remhash", args, 2, 2); err != nil {
		return nil, err
	}
	key, err := keyArg("remhash", args, 0)
	if err != nil {
		return nil, err
	}
	t, err := tableArg("remhash", args, 1)
	if err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.m, key)
	return nil, nil
}

func clrhash(args ...any) (any, error) {
	if err := arity("clrhash", args, 1, 1); err != nil {
		return nil, err
	}
	t, err := tableArg("clrhash", args, 0)
	if err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.m)
	return t, nil
}

func hashTableCount(args ...any) (any, error) {
	if err := arity("hash-table-count", args, 1, 1); err != nil {
		return nil, err
	}
	t, err := tableArg("hash-table-count", args, 0)
	if err != nil {
		return nil, err
	}
	return t.Len(), nil
}
