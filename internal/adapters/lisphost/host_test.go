package lisphost

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioJCosta/aliasreg/internal/adapters/nativehost"
	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasreg/internal/core/services/aliasregistry"
)

func TestHost_DefineOperation(t *testing.T) {
	h := New()
	require.NoError(t, h.DefineOperation("shout", func(args ...any) (any, error) {
		return strings.ToUpper(args[0].(string)) + "!", nil
	}))

	op, ok := h.Operation("shout")
	require.True(t, ok)
	got, err := op("hey")
	require.NoError(t, err)
	assert.Equal(t, "HEY!", got)

	got, err = h.Eval(`(shout "lisp")`)
	require.NoError(t, err)
	assert.Equal(t, "LISP!", got)

	assert.Equal(t, []string{"shout"}, h.OperationNames())
	_, ok = h.Operation("whisper")
	assert.False(t, ok)
}

func TestHost_OperationsComeFromTheHostFrame(t *testing.T) {
	h := New()

	// golisp's own library is callable from Lisp but is not host catalogue.
	for _, name := range []string{"car", "string-split", "string-upcase"} {
		_, ok := h.Operation(name)
		assert.False(t, ok, name)
	}
	got, err := h.Eval(`(car '(1 2))`)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	_, err = h.Eval("(define (square x) (* x x))")
	require.NoError(t, err)
	op, ok := h.Operation("square")
	require.True(t, ok, "functions defined in the host frame are operations")
	got, err = op(6)
	require.NoError(t, err)
	assert.Equal(t, 36, got)
}

func TestHost_DefineFunction(t *testing.T) {
	h := New()
	require.NoError(t, h.DefineFunction("twice", "x", "(* x 2)"))

	op, ok := h.Operation("twice")
	require.True(t, ok)
	got, err := op(21)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	got, err = h.Eval("(twice 4)")
	require.NoError(t, err)
	assert.Equal(t, 8, got)

	// Existing callers see a redefinition.
	require.NoError(t, h.DefineFunction("twice", "x", "(+ x x 1)"))
	got, err = op(1)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	assert.Error(t, h.DefineFunction("broken", "x", "(+ x"))
}

func TestHost_Cells(t *testing.T) {
	h := New()
	require.NoError(t, h.DefineCell("fill-column", 70))
	require.NoError(t, h.DefineReservedCell("inhibit-quit", nil))

	c, ok := h.Cell("fill-column")
	require.True(t, ok)
	assert.Equal(t, 70, c.Load())

	require.NoError(t, c.Store(80))
	got, err := h.Eval("fill-column")
	require.NoError(t, err)
	assert.Equal(t, 80, got, "Lisp code sees writes made through a cell")

	_, err = h.Eval("(set! fill-column 90)")
	require.NoError(t, err)
	other, _ := h.Cell("fill-column")
	assert.Equal(t, 90, other.Load(), "cells see writes made by Lisp code")

	assert.True(t, h.Aliasable("fill-column"))
	assert.False(t, h.Aliasable("inhibit-quit"))
	_, ok = h.Cell("never-defined")
	assert.False(t, ok)
}

func TestHost_MirrorNativeHost(t *testing.T) {
	native := nativehost.New(nil)
	h := New()
	require.NoError(t, h.Mirror(native, "fill-column", "inhibit-quit", "no-such-cell"))

	assert.Equal(t, native.OperationNames(), h.OperationNames())

	got, err := h.Eval(`(upcase "abc")`)
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)

	got, err = h.Eval(`(split-string "a,b,c" ",")`)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b", "c"}, got)

	// Buffers have no Lisp representation and round-trip as opaque objects.
	got, err = h.Eval(`(buffer-name (get-buffer-create "notes"))`)
	require.NoError(t, err)
	assert.Equal(t, "notes", got)

	c, ok := h.Cell("fill-column")
	require.True(t, ok)
	assert.Equal(t, 70, c.Load())
	assert.False(t, h.Aliasable("inhibit-quit"))
	_, ok = h.Cell("no-such-cell")
	assert.False(t, ok)
}

func TestHost_WithRegistry(t *testing.T) {
	h := New()
	require.NoError(t, h.DefineFunction("split-words", "s", `(list s)`))
	require.NoError(t, h.DefineCell("fill-column", 70))
	require.NoError(t, h.DefineReservedCell("inhibit-quit", false))

	reg := aliasregistry.New(h)
	require.NoError(t, reg.RegisterOperationAlias("words-split", "split-words", ""))
	require.NoError(t, reg.RegisterValueAlias("column-fill", "fill-column"))
	assert.ErrorIs(t, reg.RegisterValueAlias("quit-inhibit", "inhibit-quit"), alias.ErrInvalidAliasTarget)

	r, err := reg.ResolveOperation("words-split")
	require.NoError(t, err)
	got, err := r.Entity("x y")
	require.NoError(t, err)
	assert.Equal(t, []any{"x y"}, got)

	v, err := reg.ResolveValue("column-fill")
	require.NoError(t, err)
	require.NoError(t, v.Entity.Store(100))
	got, err = h.Eval("fill-column")
	require.NoError(t, err)
	assert.Equal(t, 100, got)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"bool", true, true},
		{"int", 7, 7},
		{"float", 1.5, 1.5},
		{"string", "s", "s"},
		{"symbol", nativehost.Symbol("foo"), nativehost.Symbol("foo")},
		{"list", []any{1, "two", []any{3}}, []any{1, "two", []any{3}}},
		{"string slice", []string{"a", "b"}, []any{"a", "b"}},
		{"dotted pair", &nativehost.Cons{Car: "k", Cdr: 1}, &nativehost.Cons{Car: "k", Cdr: 1}},
		{"empty list", []any{}, nil},
		{"list holding nil", []any{1, nil}, []any{1, nil}},
		{"improper list", &nativehost.Cons{Car: 1, Cdr: &nativehost.Cons{Car: 2, Cdr: 3}},
			&nativehost.Cons{Car: 1, Cdr: &nativehost.Cons{Car: 2, Cdr: 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := toData(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fromData(d))
		})
	}

	t.Run("opaque values keep identity", func(t *testing.T) {
		table := &nativehost.HashTable{}
		d, err := toData(table)
		require.NoError(t, err)
		assert.Same(t, table, fromData(d))
	})
}

// within fails the test when fn does not return in time, so a conversion
// that loops shows up as a failure instead of stalling the package.
func within(t *testing.T, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("call did not return")
	}
}

func TestHost_ListResultThroughAlias(t *testing.T) {
	h := New()
	require.NoError(t, h.Mirror(nativehost.New(nil)))
	reg := aliasregistry.New(h)
	require.NoError(t, reg.RegisterOperationAlias("string-split", "split-string", ""))

	r, err := reg.ResolveOperation("string-split")
	require.NoError(t, err)

	var got any
	within(t, func() { got, err = r.Entity("a b") })
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)

	within(t, func() { got, err = r.Entity("") })
	require.NoError(t, err)
	assert.Nil(t, got, "an empty list reads back as nil")

	within(t, func() { got, err = h.Eval("(+ 1 2)") })
	require.NoError(t, err)
	assert.Equal(t, 3, got, "the host stays usable after list results")
}

func TestHost_NilCells(t *testing.T) {
	h := New()
	require.NoError(t, h.Mirror(nativehost.New(nil), "inhibit-quit"))
	require.NoError(t, h.DefineCell("mark", nil))

	for _, name := range []string{"inhibit-quit", "mark"} {
		c, ok := h.Cell(name)
		require.True(t, ok, name)
		var got any = "unset"
		within(t, func() { got = c.Load() })
		assert.Nil(t, got, name)
	}

	mark, _ := h.Cell("mark")
	require.NoError(t, mark.Store(5))
	within(t, func() { assert.Equal(t, 5, mark.Load()) })
	require.NoError(t, mark.Store(nil))
	within(t, func() { assert.Nil(t, mark.Load()) })
}
