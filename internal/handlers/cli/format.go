package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseArg reads a command-line argument as an int, then a float, falling
// back to a string. A double-quoted argument is always a string, and so are
// words like "inf" that only parse as special floats.
func parseArg(s string) any {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		if unquoted, err := strconv.Unquote(s); err == nil {
			return unquoted
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if strings.ContainsAny(s, "0123456789") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

func parseArgs(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = parseArg(a)
	}
	return out
}

// formatValue prints host values the way the host's reader would read them back.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		if x {
			return "t"
		}
		return "nil"
	case string:
		return strconv.Quote(x)
	case []any:
		parts := make([]string, len(x))
		for i, el := range x {
			parts[i] = formatValue(el)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
