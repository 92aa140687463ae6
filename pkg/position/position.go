// Package position converts between LSP line/character coordinates and byte
// offsets in document content.
package position

import (
	"fmt"
	"strings"
)

// RawPosition is a byte offset in the source text.
type RawPosition struct {
	Offset int
}

// FromLineAndColumn resolves a zero-based line/column pair against fileText.
// Lines past the end of the file clamp to the end; columns past the end of
// their line clamp to the line end.
func FromLineAndColumn(line, col int, fileText string) RawPosition {
	split := strings.Split(fileText, "\n")
	offset := 0
	for i := 0; i < line && i < len(split); i++ {
		offset += len(split[i]) + 1
	}
	if line < len(split) {
		if col > len(split[line]) {
			col = len(split[line])
		}
		if col < 0 {
			col = 0
		}
		offset += col
	}
	if offset > len(fileText) {
		offset = len(fileText)
	}
	return RawPosition{Offset: offset}
}

// GetLineAndColumn returns the zero-based line and column of the position
// within text.
func (p RawPosition) GetLineAndColumn(text string) (line, col int) {
	lastNewline := -1
	for i := 0; i < p.Offset && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			lastNewline = i
		}
	}
	col = p.Offset - lastNewline - 1
	return line, col
}

func (p RawPosition) String() string {
	return fmt.Sprintf("@%d", p.Offset)
}

// LineAt returns the full text of the zero-based line index, or false when
// the index is out of range.
func LineAt(fileText string, line int) (string, bool) {
	split := strings.Split(fileText, "\n")
	if line < 0 || line >= len(split) {
		return "", false
	}
	return split[line], true
}

// Splice replaces the half-open byte range [start, end) of content with text.
func Splice(content string, start, end RawPosition, text string) string {
	if start.Offset < 0 {
		start.Offset = 0
	}
	if end.Offset > len(content) {
		end.Offset = len(content)
	}
	if start.Offset > end.Offset {
		start.Offset = end.Offset
	}
	return content[:start.Offset] + text + content[end.Offset:]
}
