package nativehost

import "fmt"

func (h *Host) installSymbols() {
	h.DefineOperation("intern", mapSymbol("intern", func(s string) any { return Symbol(s) }))
	h.DefineOperation("symbol-name", symbolName)
}

func mapSymbol(name string, fn func(string) any) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		if err := arity(name, args, 1, 1); err != nil {
			return nil, err
		}
		s, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("%s: %w: stringp %v", name, ErrWrongTypeArgument, args[0])
		}
		return fn(s), nil
	}
}

func symbolName(args ...any) (any, error) {
	if err := arity("symbol-name", args, 1, 1); err != nil {
		return nil, err
	}
	sym, ok := args[0].(Symbol)
	if !ok {
		return nil, fmt.Errorf("symbol-name: %w: symbolp %v", ErrWrongTypeArgument, args[0])
	}
	return string(sym), nil
}
