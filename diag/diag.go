// Package diag renders a byte range of a scanned buffer — typically an
// error token — as a one-line source excerpt with a caret pointing at its
// first byte. It performs no classification of its own; it is pure
// presentation for the CLI and for test failure output.
package diag

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/oarkflow/sqltoken/token"
)

// Excerpt renders the source line containing tok.Begin, followed by a
// caret line pointing at that byte. East Asian wide/fullwidth runes are
// counted as two display columns so the caret still lines up under a
// monospaced, UTF-8 terminal — the same rule db47h-lex's
// ExampleFile_GetLineBytes uses for its own caret rendering.
func Excerpt(src []byte, tok token.Token) string {
	lineStart, lineEnd := lineBounds(src, tok.Begin)
	line := src[lineStart:lineEnd]

	col := tok.Begin - lineStart
	if col > len(line) {
		col = len(line)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d: %s\n", tok.Line, tok.Col, tok.Kind)
	fmt.Fprintf(&b, "|%s\n", line)
	fmt.Fprintf(&b, "|%s^\n", strings.Repeat(" ", displayWidth(line[:col])))
	return b.String()
}

// lineBounds returns the [start, end) byte range of the line containing
// offset, excluding the terminating newline.
func lineBounds(src []byte, offset int) (start, end int) {
	if offset > len(src) {
		offset = len(src)
	}
	start = bytes.LastIndexByte(src[:offset], '\n') + 1
	if rel := bytes.IndexByte(src[offset:], '\n'); rel >= 0 {
		end = offset + rel
	} else {
		end = len(src)
	}
	return start, end
}

// displayWidth computes the width in terminal cells of b, treating East
// Asian wide/fullwidth runes as two cells and ambiguous-width runes as one
// (the common default outside CJK locales).
func displayWidth(b []byte) int {
	w := 0
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		i += size
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			w++
		}
	}
	return w
}
