package aliasregistry

import "github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"

// table is one published snapshot. It is never mutated after publication;
// writers clone it, edit the clone and swap the pointer.
type table struct {
	entries []alias.Entry  // registration order
	index   map[string]int // alias name -> position in entries
}

func newTable() *table {
	return &table{index: make(map[string]int)}
}

func (t *table) clone() *table {
	c := &table{
		entries: make([]alias.Entry, len(t.entries), len(t.entries)+1),
		index:   make(map[string]int, len(t.index)+1),
	}
	copy(c.entries, t.entries)
	for k, v := range t.index {
		c.index[k] = v
	}
	return c
}

// put inserts or overwrites. An overwritten entry keeps its original slot.
func (t *table) put(e alias.Entry) {
	if i, ok := t.index[e.Name]; ok {
		t.entries[i] = e
		return
	}
	t.index[e.Name] = len(t.entries)
	t.entries = append(t.entries, e)
}

func (t *table) get(name string) (alias.Entry, bool) {
	i, ok := t.index[name]
	if !ok {
		return alias.Entry{}, false
	}
	return t.entries[i], true
}
