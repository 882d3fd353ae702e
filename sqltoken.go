// Package sqltoken is a zero-allocation, single-pass tokenizer for an
// SQL-family query language.
//
// It is the thin root facade over the scanner/token/tokstream packages —
// re-exported here so most callers only need one import — grounded in the
// teacher's own root-level re-export pattern (sqlparser.go), trimmed down
// to the tokenizer-only surface: no AST, no grammar, no keyword table.
//
// Usage:
//
//	s := sqltoken.New([]byte("SELECT 1"))
//	for {
//	    tok := s.Next()
//	    if tok.Kind == sqltoken.EndOfStream {
//	        break
//	    }
//	    fmt.Println(tok.Kind, string(tok.Raw))
//	}
package sqltoken

import (
	"github.com/oarkflow/sqltoken/scanner"
	"github.com/oarkflow/sqltoken/token"
	"github.com/oarkflow/sqltoken/tokstream"
)

// Re-export core types so callers only import this package.
type (
	Kind    = token.Kind
	Token   = token.Token
	Scanner = scanner.Scanner
	Stream  = tokstream.Stream
)

// Re-export the closed Kind enumeration.
const (
	EndOfStream          = token.EndOfStream
	Whitespace           = token.Whitespace
	Comment              = token.Comment
	BareWord             = token.BareWord
	Number               = token.Number
	StringLiteral        = token.StringLiteral
	QuotedIdentifier     = token.QuotedIdentifier
	OpeningRoundBracket  = token.OpeningRoundBracket
	ClosingRoundBracket  = token.ClosingRoundBracket
	OpeningSquareBracket = token.OpeningSquareBracket
	ClosingSquareBracket = token.ClosingSquareBracket
	Comma                = token.Comma
	Semicolon            = token.Semicolon
	Dot                  = token.Dot
	QuestionMark         = token.QuestionMark
	Colon                = token.Colon
	Plus                 = token.Plus
	Minus                = token.Minus
	Asterisk             = token.Asterisk
	Division             = token.Division
	Modulo               = token.Modulo
	Equals               = token.Equals
	NotEquals            = token.NotEquals
	Less                 = token.Less
	Greater              = token.Greater
	LessOrEquals         = token.LessOrEquals
	GreaterOrEquals      = token.GreaterOrEquals
	Concatenation        = token.Concatenation
	Arrow                = token.Arrow

	Error                            = token.Error
	ErrorMultilineCommentIsNotClosed = token.ErrorMultilineCommentIsNotClosed
	ErrorSingleQuoteIsNotClosed      = token.ErrorSingleQuoteIsNotClosed
	ErrorDoubleQuoteIsNotClosed      = token.ErrorDoubleQuoteIsNotClosed
	ErrorBackQuoteIsNotClosed        = token.ErrorBackQuoteIsNotClosed
	ErrorSingleExclamationMark       = token.ErrorSingleExclamationMark
	ErrorSinglePipeMark              = token.ErrorSinglePipeMark
	ErrorWordWithoutWhitespace       = token.ErrorWordWithoutWhitespace
)

// New returns a Scanner over src. src must remain valid and unmodified
// for the Scanner's lifetime and that of any Token it returns.
func New(src []byte) *Scanner {
	return scanner.New(src)
}

// NewStream returns a Stream giving pull-based lookahead over sc.
func NewStream(sc *Scanner) *Stream {
	return tokstream.New(sc)
}

// Tokenize tokenizes all of src into buf (reusing its backing array if
// large enough) and returns the resulting slice, including the trailing
// EndOfStream token.
func Tokenize(src []byte, buf []Token) []Token {
	buf = buf[:0]
	s := scanner.New(src)
	for {
		t := s.Next()
		buf = append(buf, t)
		if t.Kind == EndOfStream {
			break
		}
	}
	return buf
}
