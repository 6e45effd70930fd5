package identifier

// AnalyzedName holds the structural breakdown of a hyphenated identifier
// such as "expand-file-name".
type AnalyzedName struct {
	Original string
	Segments []string
	// Verb is the leading action word, empty when the name does not start with one.
	Verb string
	// Object is what the verb acts on inside the subject ("regexp" for
	// "replace-regexp-in-string"). Usually empty.
	Object string
	// Subject is what the verb acts on ("file-name" for "expand-file-name").
	Subject string
	// Internal marks names that should never get a public alias
	// (double-hyphen helpers, "internal-" names).
	Internal bool
}

// HasVerbPrefix reports whether the name is in verb-first form.
func (a AnalyzedName) HasVerbPrefix() bool {
	return a.Verb != "" && a.Subject != ""
}
