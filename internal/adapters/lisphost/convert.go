package lisphost

import (
	"fmt"
	"unsafe"

	"github.com/steelseries/golisp"

	"github.com/AntonioJCosta/aliasreg/internal/adapters/nativehost"
)

// goValueType tags Go values that have no Lisp counterpart; they travel
// through Lisp as opaque objects and come back unchanged.
const goValueType = "go-value"

func toData(v any) (*golisp.Data, error) {
	switch x := v.(type) {
	case nil:
		return golisp.EmptyCons(), nil
	case *golisp.Data:
		return x, nil
	case bool:
		return golisp.BooleanWithValue(x), nil
	case int:
		return golisp.IntegerWithValue(int64(x)), nil
	case int64:
		return golisp.IntegerWithValue(x), nil
	case float64:
		return golisp.FloatWithValue(float32(x)), nil
	case string:
		return golisp.StringWithValue(x), nil
	case nativehost.Symbol:
		return golisp.Intern(string(x)), nil
	case []any:
		return toList(x)
	case []string:
		items := make([]any, len(x))
		for i, s := range x {
			items[i] = s
		}
		return toList(items)
	case *nativehost.Cons:
		car, err := toData(x.Car)
		if err != nil {
			return nil, err
		}
		cdr, err := toData(x.Cdr)
		if err != nil {
			return nil, err
		}
		return golisp.Cons(car, cdr), nil
	default:
		box := &x
		return golisp.ObjectWithTypeAndValue(goValueType, unsafe.Pointer(box)), nil
	}
}

func toList(items []any) (*golisp.Data, error) {
	data := make([]*golisp.Data, len(items))
	for i, item := range items {
		d, err := toData(item)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		data[i] = d
	}
	return golisp.ArrayToList(data), nil
}

func fromList(list *golisp.Data) []any {
	items := golisp.ToArray(list)
	out := make([]any, len(items))
	for i, d := range items {
		out[i] = fromData(d)
	}
	return out
}

// fromData maps Lisp data to the Go values operations exchange. Proper
// lists become []any, dotted pairs become *nativehost.Cons and anything
// without a counterpart (functions, foreign objects) is returned as is.
func fromData(d *golisp.Data) any {
	switch {
	case golisp.NilP(d):
		return nil
	case golisp.BooleanP(d):
		return golisp.BooleanValue(d)
	case golisp.IntegerP(d):
		return int(golisp.IntegerValue(d))
	case golisp.FloatP(d):
		return float64(golisp.FloatValue(d))
	case golisp.StringP(d):
		return golisp.StringValue(d)
	case golisp.SymbolP(d):
		return nativehost.Symbol(golisp.StringValue(d))
	case golisp.ObjectP(d) && golisp.ObjectType(d) == goValueType:
		return *(*any)(golisp.ObjectValue(d))
	case golisp.PairP(d):
		return fromPair(d)
	default:
		return d
	}
}

// fromPair walks to the end of the cdr chain. golisp reports a nil pointer
// as a pair and ends proper lists with one, so the walk stops at any nil.
func fromPair(d *golisp.Data) any {
	c := d
	for c != nil && golisp.PairP(c) && golisp.NotNilP(c) {
		c = golisp.Cdr(c)
	}
	if c != nil && golisp.NotNilP(c) {
		return &nativehost.Cons{Car: fromData(golisp.Car(d)), Cdr: fromData(golisp.Cdr(d))}
	}
	return fromList(d)
}
