package nativehost

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// defaultSeparators is what split-string splits on when given no separator.
var defaultSeparators = regexp.MustCompile(`[ \f\t\n\r\v]+`)

func (h *Host) installStrings() {
	h.DefineOperation("split-string", splitString)
	h.DefineOperation("concat", concat)
	h.DefineOperation("upcase", mapString("upcase", strings.ToUpper))
	h.DefineOperation("downcase", mapString("downcase", strings.ToLower))
	h.DefineOperation("capitalize", mapString("capitalize", capitalize))
	h.DefineOperation("string-trim", mapString("string-trim", strings.TrimSpace))
	h.DefineOperation("string-to-number", stringToNumber)
	h.DefineOperation("number-to-string", numberToString)
	h.DefineOperation("substring", substring)
	h.DefineOperation("string-prefix-p", affixPredicate("string-prefix-p", strings.HasPrefix))
	h.DefineOperation("string-suffix-p", affixPredicate("string-suffix-p", strings.HasSuffix))
	h.DefineOperation("replace-regexp-in-string", replaceRegexpInString)
	h.DefineOperation("string-match-p", h.stringMatchP)
	h.DefineOperation("regexp-quote", mapString("regexp-quote", regexp.QuoteMeta))
}

// splitString takes (string [separators [omit-nulls]]). Without separators
// it splits on whitespace and always drops empty pieces.
func splitString(args ...any) (any, error) {
	if err := arity("split-string", args, 1, 3); err != nil {
		return nil, err
	}
	s, err := stringArg("split-string", args, 0)
	if err != nil {
		return nil, err
	}

	re, omitNulls := defaultSeparators, true
	if sep := optional(args, 1); sep != nil {
		pattern, err := stringArg("split-string", args, 1)
		if err != nil {
			return nil, err
		}
		if re, err = regexp.Compile(pattern); err != nil {
			return nil, fmt.Errorf("split-string: invalid-regexp: %w", err)
		}
		omitNulls = truthy(optional(args, 2))
	}

	out := []any{}
	for _, piece := range re.Split(s, -1) {
		if omitNulls && piece == "" {
			continue
		}
		out = append(out, piece)
	}
	return out, nil
}

func concat(args ...any) (any, error) {
	var b strings.Builder
	for i := range args {
		s, err := stringArg("concat", args, i)
		if err != nil {
			return nil, err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

func mapString(name string, fn func(string) string) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		if err := arity(name, args, 1, 1); err != nil {
			return nil, err
		}
		s, err := stringArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		return fn(s), nil
	}
}

func capitalize(s string) string {
	runes := []rune(s)
	inWord := false
	for i, r := range runes {
		word := unicode.IsLetter(r) || unicode.IsDigit(r)
		switch {
		case word && !inWord:
			runes[i] = unicode.ToUpper(r)
		case word:
			runes[i] = unicode.ToLower(r)
		}
		inWord = word
	}
	return string(runes)
}

// stringToNumber parses a leading integer or float; unparseable input is 0.
func stringToNumber(args ...any) (any, error) {
	if err := arity("string-to-number", args, 1, 2); err != nil {
		return nil, err
	}
	s, err := stringArg("string-to-number", args, 0)
	if err != nil {
		return nil, err
	}
	base := 10
	if optional(args, 1) != nil {
		if base, err = intArg("string-to-number", args, 1); err != nil {
			return nil, err
		}
	}
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, base, 64); err == nil {
		return int(n), nil
	}
	if base == 10 {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, nil
		}
	}
	return 0, nil
}

func numberToString(args ...any) (any, error) {
	if err := arity("number-to-string", args, 1, 1); err != nil {
		return nil, err
	}
	switch n := args[0].(type) {
	case int:
		return strconv.Itoa(n), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64), nil
	default:
		return nil, fmt.Errorf("number-to-string: %w: numberp %v", ErrWrongTypeArgument, n)
	}
}

// substring takes (string from [to]); negative indices count from the end.
func substring(args ...any) (any, error) {
	if err := arity("substring", args, 1, 3); err != nil {
		return nil, err
	}
	s, err := stringArg("substring", args, 0)
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	from, to := 0, len(runes)
	if optional(args, 1) != nil {
		if from, err = intArg("substring", args, 1); err != nil {
			return nil, err
		}
	}
	if optional(args, 2) != nil {
		if to, err = intArg("substring", args, 2); err != nil {
			return nil, err
		}
	}
	if from < 0 {
		from += len(runes)
	}
	if to < 0 {
		to += len(runes)
	}
	if from < 0 || to > len(runes) || from > to {
		return nil, fmt.Errorf("substring: args-out-of-range: %q %d %d", s, from, to)
	}
	return string(runes[from:to]), nil
}

func affixPredicate(name string, fn func(s, affix string) bool) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		if err := arity(name, args, 2, 2); err != nil {
			return nil, err
		}
		affix, err := stringArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		s, err := stringArg(name, args, 1)
		if err != nil {
			return nil, err
		}
		return fn(s, affix), nil
	}
}

// replaceRegexpInString takes (regexp replacement string). \N in the
// replacement refers to submatch N.
func replaceRegexpInString(args ...any) (any, error) {
	if err := arity("replace-regexp-in-string", args, 3, 3); err != nil {
		return nil, err
	}
	var parts [3]string
	for i := range parts {
		s, err := stringArg("replace-regexp-in-string", args, i)
		if err != nil {
			return nil, err
		}
		parts[i] = s
	}
	re, err := regexp.Compile(parts[0])
	if err != nil {
		return nil, fmt.Errorf("replace-regexp-in-string: invalid-regexp: %w", err)
	}
	replacement := backrefPattern.ReplaceAllString(strings.ReplaceAll(parts[1], "$", "$$"), "$${$1}")
	return re.ReplaceAllString(parts[2], replacement), nil
}

var backrefPattern = regexp.MustCompile(`\\([0-9])`)

// stringMatchP returns the index of the first match or nil. Matching folds
// case when the case-fold-search cell is non-nil.
func (h *Host) stringMatchP(args ...any) (any, error) {
	if err := arity("string-match-p", args, 2, 3); err != nil {
		return nil, err
	}
	pattern, err := stringArg("string-match-p", args, 0)
	if err != nil {
		return nil, err
	}
	s, err := stringArg("string-match-p", args, 1)
	if err != nil {
		return nil, err
	}
	start := 0
	if optional(args, 2) != nil {
		if start, err = intArg("string-match-p", args, 2); err != nil {
			return nil, err
		}
	}
	if start < 0 || start > len(s) {
		return nil, fmt.Errorf("string-match-p: args-out-of-range: %d", start)
	}
	if truthy(h.lookupCell("case-fold-search")) {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("string-match-p: invalid-regexp: %w", err)
	}
	loc := re.FindStringIndex(s[start:])
	if loc == nil {
		return nil, nil
	}
	return start + loc[0], nil
}
