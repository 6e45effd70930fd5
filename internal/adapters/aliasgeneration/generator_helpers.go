package aliasgeneration

import "strings"

/*
proposeName moves the subject of a verb-first name to the front.

	kill-buffer               -> buffer-kill
	expand-file-name          -> file-name-expand
	replace-regexp-in-string  -> string-replace-regexp
	get-buffer-create         -> buffer-get-create
*/
func (g *AliasGenerator) proposeName(canonical string) (string, bool) {
	analyzed := g.analyzer.Analyze(canonical)
	if analyzed.Internal || !analyzed.HasVerbPrefix() {
		return "", false
	}

	parts := []string{analyzed.Subject, analyzed.Verb}
	if analyzed.Object != "" {
		parts = append(parts, analyzed.Object)
	}
	proposal := strings.Join(parts, "-")
	if proposal == canonical {
		return "", false
	}
	return proposal, true
}
