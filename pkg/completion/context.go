package completion

import (
	"strings"

	"github.com/claytmpl/clayls/pkg/clay"
)

// Context is the substring of the current line from its start up to the
// cursor column. It is derived per request and never stored.
type Context struct {
	Prefix string
}

// NewContext clips lineText at character, tolerating cursor columns past the
// end of the line.
func NewContext(lineText string, character int) Context {
	if character < 0 {
		character = 0
	}
	if character > len(lineText) {
		character = len(lineText)
	}
	return Context{Prefix: lineText[:character]}
}

// InsideExpression reports whether the cursor sits inside an open Clay
// expression: the prefix contains an open delimiter with no matching close
// delimiter after it.
//
// This is a deliberate single-line heuristic, not a tokenizer. It does not
// track nesting across lines and does not know about delimiters inside
// string literals or comments.
func (c Context) InsideExpression() bool {
	lastOpen := strings.LastIndex(c.Prefix, clay.OpenDelim)
	if lastOpen == -1 {
		return false
	}
	return !strings.Contains(c.Prefix[lastOpen+len(clay.OpenDelim):], clay.CloseDelim)
}
