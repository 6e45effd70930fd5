package nameanalysis

import "strings"

var defaultVerbs = []string{
	"add", "append", "capitalize", "clear", "copy", "create", "delete",
	"describe", "display", "downcase", "erase", "expand", "find", "get",
	"insert", "kill", "list", "make", "move", "put", "read", "remove",
	"rename", "replace", "save", "search", "select", "set", "show", "split",
	"switch", "toggle", "upcase", "write",
}

// isInternal reports names that are helpers by convention and should not
// get public aliases.
func isInternal(name string) bool {
	return strings.Contains(name, "--") || strings.HasPrefix(name, "internal-")
}

// splitVerbForm handles three shapes, segments[0] always being a verb:
//
//	expand-file-name          -> expand, "", file-name
//	replace-regexp-in-string  -> replace, regexp, string
//	get-buffer-create         -> get-create, "", buffer
func (a *BasicAnalyzer) splitVerbForm(segments []string) (verb, object, subject string) {
	verb = segments[0]
	rest := segments[1:]

	for i, s := range rest {
		if s == "in" && i > 0 && i < len(rest)-1 {
			return verb, strings.Join(rest[:i], "-"), strings.Join(rest[i+1:], "-")
		}
	}

	if len(rest) >= 2 && a.verbs[rest[len(rest)-1]] {
		verb = verb + "-" + rest[len(rest)-1]
		rest = rest[:len(rest)-1]
	}
	return verb, "", strings.Join(rest, "-")
}
