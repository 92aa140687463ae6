// Package clay holds the fixed constants of the Clay templating dialect:
// the first-line marker that opts a document in, the language identifier
// mapping, the expression delimiters, and the helper catalog.
//
// Everything here is part of the public contract of the server. Downstream
// tooling (snippet files, editor configuration) keys off these exact values,
// so changing any of them is a breaking change.
package clay

// Marker is the exact trimmed content line 0 must carry for a document to
// be classified as Clay. Extra tokens on the line do not count.
const Marker = "// @clay"

// Expression delimiters. The completion gate only looks for these within a
// single line, it does not track nesting across lines.
const (
	OpenDelim  = "{{"
	CloseDelim = "}}"
)

// TriggerCharacters are the completion trigger characters registered for
// derived documents. Space is included so that typing a space after a helper
// name keeps surfacing parameter-position suggestions.
var TriggerCharacters = []string{"{", " "}

// languageMapping maps a base language identifier to the derived identifier
// a marked document is relabeled to. Immutable, no dynamic registration.
var languageMapping = map[string]string{
	"javascript":      "javascript-with-clay",
	"javascriptreact": "javascriptreact-with-clay",
	"typescript":      "typescript-with-clay",
	"typescriptreact": "typescriptreact-with-clay",
}

// derivedTags is the reverse index of languageMapping.
var derivedTags = func() map[string]string {
	out := make(map[string]string, len(languageMapping))
	for base, derived := range languageMapping {
		out[derived] = base
	}
	return out
}()

// DerivedTag returns the derived identifier for a base language identifier,
// or false if the base language is not supported.
func DerivedTag(base string) (string, bool) {
	derived, ok := languageMapping[base]
	return derived, ok
}

// IsDerivedTag reports whether tag is one of the derived identifiers, i.e.
// whether a document carrying it has already been classified as Clay.
func IsDerivedTag(tag string) bool {
	_, ok := derivedTags[tag]
	return ok
}

// BaseTags returns the supported base language identifiers. The order is
// unspecified; callers that need determinism should sort.
func BaseTags() []string {
	out := make([]string, 0, len(languageMapping))
	for base := range languageMapping {
		out = append(out, base)
	}
	return out
}
