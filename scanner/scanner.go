// Package scanner implements the tokenizer core: a single-pass, zero-copy
// scanning state machine over a caller-supplied byte buffer. It holds no
// buffers of its own and performs no I/O; every Token it returns borrows a
// slice of the input passed to New.
//
// The dispatch table and every sub-automaton below are a direct port of
// ClickHouse's Lexer::nextToken (original_source/dbms/src/Parsers/Lexer.cpp):
// same byte classes, same ambiguity resolution for '.' and '-' and '/',
// same error taxonomy. See DESIGN.md for the full grounding.
package scanner

import "github.com/oarkflow/sqltoken/token"

// Scanner holds the immutable bounds of a byte buffer and a mutable cursor
// into it. The zero value is not usable; construct with New.
type Scanner struct {
	buf        []byte
	begin, end int
	cursor     int
	line, col  uint32

	// prevKind is the Kind of the previously emitted token. scanWord uses
	// it for exactly one thing: suppressing the §4.3 adjacency check when
	// the immediately preceding token was itself an
	// ErrorWordWithoutWhitespace, which is what stops that error from
	// cascading byte-by-byte once it has already fired once. The
	// adjacency check itself is against the raw byte before cursor
	// (matching original_source/dbms/src/Parsers/Lexer.cpp:82's
	// isWordCharASCII(pos[-1])), not against prevKind — a Number lexeme
	// can end in a non-word byte (e.g. "1." from "1.x"), in which case no
	// error should fire at all regardless of the token kind that produced
	// that byte.
	prevKind token.Kind
}

// New returns a Scanner over buf[0:len(buf)]. buf must remain valid (and
// unmodified) for the lifetime of the Scanner and of any Token it returns.
func New(buf []byte) *Scanner {
	return &Scanner{buf: buf, begin: 0, end: len(buf), cursor: 0, line: 1, col: 1}
}

// Reset reuses s for a new buffer, avoiding an allocation for the Scanner
// value itself.
func (s *Scanner) Reset(buf []byte) {
	s.buf = buf
	s.begin = 0
	s.end = len(buf)
	s.cursor = 0
	s.line = 1
	s.col = 1
	s.prevKind = token.EndOfStream
}

// Next consumes input starting at the cursor and returns exactly one
// Token. It never fails: malformed input yields a Token whose Kind is one
// of the token.Error* variants. Once EndOfStream is returned, every
// subsequent call returns EndOfStream again (idempotent terminal state).
func (s *Scanner) Next() token.Token {
	tok := s.next()
	s.prevKind = tok.Kind
	return tok
}

func (s *Scanner) next() token.Token {
	if s.cursor >= s.end {
		return token.Token{Kind: token.EndOfStream, Begin: s.end, End: s.end, Raw: s.buf[s.end:s.end], Line: s.line, Col: s.col}
	}

	start := s.cursor
	startLine, startCol := s.line, s.col
	b := s.buf[s.cursor]

	switch {
	case isWhitespace(b):
		return s.scanWhitespace(start, startLine, startCol)

	case isWordStart(b):
		return s.scanWord(start, startLine, startCol)

	case isDigit(b):
		return s.scanNumber(start, startLine, startCol)

	case b == '\'':
		return s.scanQuoted(start, startLine, startCol, '\'', token.StringLiteral, token.ErrorSingleQuoteIsNotClosed)
	case b == '"':
		return s.scanQuoted(start, startLine, startCol, '"', token.QuotedIdentifier, token.ErrorDoubleQuoteIsNotClosed)
	case b == '`':
		return s.scanQuoted(start, startLine, startCol, '`', token.QuotedIdentifier, token.ErrorBackQuoteIsNotClosed)

	case b == '(':
		return s.advanceEmit(1, token.OpeningRoundBracket, start, startLine, startCol)
	case b == ')':
		return s.advanceEmit(1, token.ClosingRoundBracket, start, startLine, startCol)
	case b == '[':
		return s.advanceEmit(1, token.OpeningSquareBracket, start, startLine, startCol)
	case b == ']':
		return s.advanceEmit(1, token.ClosingSquareBracket, start, startLine, startCol)
	case b == ',':
		return s.advanceEmit(1, token.Comma, start, startLine, startCol)
	case b == ';':
		return s.advanceEmit(1, token.Semicolon, start, startLine, startCol)
	case b == '?':
		return s.advanceEmit(1, token.QuestionMark, start, startLine, startCol)
	case b == ':':
		return s.advanceEmit(1, token.Colon, start, startLine, startCol)

	case b == '.':
		return s.scanDot(start, startLine, startCol)

	case b == '+':
		return s.advanceEmit(1, token.Plus, start, startLine, startCol)
	case b == '*':
		return s.advanceEmit(1, token.Asterisk, start, startLine, startCol)
	case b == '%':
		return s.advanceEmit(1, token.Modulo, start, startLine, startCol)

	case b == '-':
		return s.scanMinus(start, startLine, startCol)
	case b == '/':
		return s.scanSlash(start, startLine, startCol)

	case b == '=':
		return s.scanEquals(start, startLine, startCol)
	case b == '!':
		return s.scanExclamation(start, startLine, startCol)
	case b == '<':
		return s.scanLess(start, startLine, startCol)
	case b == '>':
		return s.scanGreater(start, startLine, startCol)
	case b == '|':
		return s.scanPipe(start, startLine, startCol)

	default:
		return s.advanceEmit(1, token.Error, start, startLine, startCol)
	}
}

// advance moves the cursor forward by one byte, updating line/col. The
// byte at the pre-advance cursor position must exist.
func (s *Scanner) advance() {
	if s.buf[s.cursor] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.cursor++
}

// advanceEmit advances n bytes (n is 1 for every call site in this file)
// and emits a Token covering [start, cursor).
func (s *Scanner) advanceEmit(n int, kind token.Kind, start int, line, col uint32) token.Token {
	for i := 0; i < n; i++ {
		s.advance()
	}
	return token.Token{Kind: kind, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
}

func (s *Scanner) peek() (byte, bool) {
	if s.cursor < s.end {
		return s.buf[s.cursor], true
	}
	return 0, false
}

func (s *Scanner) peekAt(offset int) (byte, bool) {
	if s.cursor+offset < s.end {
		return s.buf[s.cursor+offset], true
	}
	return 0, false
}

// scanWhitespace consumes the initial whitespace byte plus any further
// contiguous ASCII whitespace bytes. §4.3.
func (s *Scanner) scanWhitespace(start int, line, col uint32) token.Token {
	s.advance()
	for {
		b, ok := s.peek()
		if !ok || !isWhitespace(b) {
			break
		}
		s.advance()
	}
	return token.Token{Kind: token.Whitespace, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
}

// scanWord recognizes the adjacency error of §4.3 and otherwise consumes a
// maximal word run, emitting BareWord. The check is against the raw byte
// immediately before start, same as Lexer.cpp's isWordCharASCII(pos[-1]):
// a Number can end in a non-word byte (e.g. "1." from "1.x"), in which
// case no error fires regardless of the producing token's kind. The
// s.prevKind guard exists only to stop the error from cascading onto
// every following byte once it has already fired once: after "123abc"
// reports Number, ErrorWordWithoutWhitespace("a"), the "a" error token's
// own last byte ('a') is still a word character, but s.prevKind is now
// ErrorWordWithoutWhitespace, so "bc" recovers as a single BareWord
// instead of erroring byte by byte.
func (s *Scanner) scanWord(start int, line, col uint32) token.Token {
	if start > s.begin && isWordChar(s.buf[start-1]) && s.prevKind != token.ErrorWordWithoutWhitespace {
		s.advance()
		return token.Token{Kind: token.ErrorWordWithoutWhitespace, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
	}
	s.advance()
	for {
		b, ok := s.peek()
		if !ok || !isWordChar(b) {
			break
		}
		s.advance()
	}
	return token.Token{Kind: token.BareWord, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
}

// scanNumber recognizes §4.5's numeric forms: optional 0x/0b radix prefix,
// decimal digits, optional fractional part, optional e/p exponent. It
// never validates digits against the radix and never rejects a malformed
// exponent — see spec.md §9's open question, preserved deliberately.
func (s *Scanner) scanNumber(start int, line, col uint32) token.Token {
	if s.buf[s.cursor] == '0' {
		if nb, ok := s.peekAt(1); ok && (nb == 'x' || nb == 'b') {
			s.advance()
			s.advance()
		}
	}
	s.consumeDigits()
	if b, ok := s.peek(); ok && b == '.' {
		s.advance()
		s.consumeDigits()
	}
	s.consumeExponent()
	return token.Token{Kind: token.Number, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
}

// consumeDigits advances over a (possibly empty) run of ASCII decimal digits.
func (s *Scanner) consumeDigits() {
	for {
		b, ok := s.peek()
		if !ok || !isDigit(b) {
			return
		}
		s.advance()
	}
}

// consumeExponent implements §4.5 step 4 / §4.7's identical exponent
// clause: an 'e' or 'p' is only consumed if at least one byte remains
// after it, then an optional sign, then digits.
func (s *Scanner) consumeExponent() {
	b, ok := s.peek()
	if !ok || (b != 'e' && b != 'p') {
		return
	}
	if _, hasNext := s.peekAt(1); !hasNext {
		return
	}
	s.advance()
	if sb, ok := s.peek(); ok && (sb == '+' || sb == '-') {
		s.advance()
	}
	s.consumeDigits()
}

// scanDot resolves the ambiguity in §4.7: a Dot selector after ')', ']',
// or an alphanumeric byte, otherwise the start of a number beginning with
// a decimal point.
func (s *Scanner) scanDot(start int, line, col uint32) token.Token {
	if start > s.begin {
		prev := s.buf[start-1]
		if prev == ')' || prev == ']' || isAlphaNumeric(prev) {
			return s.advanceEmit(1, token.Dot, start, line, col)
		}
	}
	s.advance()
	s.consumeDigits()
	s.consumeExponent()
	return token.Token{Kind: token.Number, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
}

// scanMinus implements §4.8: '-' is Minus, "->" is Arrow, "--" begins a
// line comment.
func (s *Scanner) scanMinus(start int, line, col uint32) token.Token {
	s.advance()
	if b, ok := s.peek(); ok {
		if b == '>' {
			s.advance()
			return token.Token{Kind: token.Arrow, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
		}
		if b == '-' {
			s.advance()
			return s.scanLineComment(start, line, col)
		}
	}
	return token.Token{Kind: token.Minus, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
}

// scanSlash implements §4.9: '/' is Division, "//" and "/*" begin
// comments. Nested block comments are not recognized.
func (s *Scanner) scanSlash(start int, line, col uint32) token.Token {
	s.advance()
	b, ok := s.peek()
	if !ok {
		return token.Token{Kind: token.Division, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
	}
	switch b {
	case '/':
		s.advance()
		return s.scanLineComment(start, line, col)
	case '*':
		s.advance()
		return s.scanBlockComment(start, line, col)
	default:
		return token.Token{Kind: token.Division, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
	}
}

// scanLineComment implements §4.10: advance to (but not past) the next
// newline, or to end-of-buffer.
func (s *Scanner) scanLineComment(start int, line, col uint32) token.Token {
	for {
		b, ok := s.peek()
		if !ok || b == '\n' {
			break
		}
		s.advance()
	}
	return token.Token{Kind: token.Comment, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
}

// scanBlockComment implements §4.9's block-comment branch: advance until
// "*/", consuming both bytes, or report ErrorMultilineCommentIsNotClosed
// spanning to end-of-buffer.
func (s *Scanner) scanBlockComment(start int, line, col uint32) token.Token {
	for s.cursor < s.end {
		if s.buf[s.cursor] == '*' {
			if nb, ok := s.peekAt(1); ok && nb == '/' {
				s.advance()
				s.advance()
				return token.Token{Kind: token.Comment, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
			}
		}
		s.advance()
	}
	return token.Token{Kind: token.ErrorMultilineCommentIsNotClosed, Begin: start, End: s.end, Raw: s.buf[start:s.end], Line: line, Col: col}
}

// scanQuoted implements §4.6, parameterized over the quote byte and the
// success/failure kinds. Both doubled-quote and backslash escapes are
// accepted for all three quote styles.
func (s *Scanner) scanQuoted(start int, line, col uint32, quote byte, success, failure token.Kind) token.Token {
	s.advance() // opening quote
	for {
		b, ok := s.peek()
		if !ok {
			return token.Token{Kind: failure, Begin: start, End: s.end, Raw: s.buf[start:s.end], Line: line, Col: col}
		}
		switch b {
		case quote:
			s.advance()
			if nb, ok := s.peek(); ok && nb == quote {
				s.advance()
				continue
			}
			return token.Token{Kind: success, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
		case '\\':
			s.advance()
			if _, ok := s.peek(); !ok {
				return token.Token{Kind: failure, Begin: start, End: s.end, Raw: s.buf[start:s.end], Line: line, Col: col}
			}
			s.advance()
		default:
			s.advance()
		}
	}
}

// scanEquals implements the '=' branch: '=' or '==', both emit Equals.
func (s *Scanner) scanEquals(start int, line, col uint32) token.Token {
	s.advance()
	if b, ok := s.peek(); ok && b == '=' {
		s.advance()
	}
	return token.Token{Kind: token.Equals, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
}

// scanExclamation implements the '!' branch: "!=" is NotEquals, a bare '!'
// is ErrorSingleExclamationMark.
func (s *Scanner) scanExclamation(start int, line, col uint32) token.Token {
	s.advance()
	if b, ok := s.peek(); ok && b == '=' {
		s.advance()
		return token.Token{Kind: token.NotEquals, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
	}
	return token.Token{Kind: token.ErrorSingleExclamationMark, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
}

// scanLess implements the '<' branch: "<=" LessOrEquals, "<>" NotEquals,
// bare '<' Less.
func (s *Scanner) scanLess(start int, line, col uint32) token.Token {
	s.advance()
	if b, ok := s.peek(); ok {
		switch b {
		case '=':
			s.advance()
			return token.Token{Kind: token.LessOrEquals, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
		case '>':
			s.advance()
			return token.Token{Kind: token.NotEquals, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
		}
	}
	return token.Token{Kind: token.Less, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
}

// scanGreater implements the '>' branch: ">=" GreaterOrEquals, bare '>' Greater.
func (s *Scanner) scanGreater(start int, line, col uint32) token.Token {
	s.advance()
	if b, ok := s.peek(); ok && b == '=' {
		s.advance()
		return token.Token{Kind: token.GreaterOrEquals, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
	}
	return token.Token{Kind: token.Greater, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
}

// scanPipe implements the '|' branch: "||" Concatenation, bare '|'
// ErrorSinglePipeMark.
func (s *Scanner) scanPipe(start int, line, col uint32) token.Token {
	s.advance()
	if b, ok := s.peek(); ok && b == '|' {
		s.advance()
		return token.Token{Kind: token.Concatenation, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
	}
	return token.Token{Kind: token.ErrorSinglePipeMark, Begin: start, End: s.cursor, Raw: s.buf[start:s.cursor], Line: line, Col: col}
}

// ---- ASCII classification tables, teacher's [256]bool style ----

var whitespaceTable = [256]bool{' ': true, '\t': true, '\n': true, '\r': true, '\f': true, '\v': true}

var wordStartTable [256]bool
var wordCharTable [256]bool
var digitTable [256]bool
var alphaNumericTable [256]bool

func init() {
	for c := 'a'; c <= 'z'; c++ {
		wordStartTable[c] = true
		wordCharTable[c] = true
		alphaNumericTable[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		wordStartTable[c] = true
		wordCharTable[c] = true
		alphaNumericTable[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		wordCharTable[c] = true
		digitTable[c] = true
		alphaNumericTable[c] = true
	}
	wordStartTable['_'] = true
	wordCharTable['_'] = true
}

func isWhitespace(b byte) bool  { return whitespaceTable[b] }
func isWordStart(b byte) bool   { return wordStartTable[b] }
func isWordChar(b byte) bool    { return wordCharTable[b] }
func isDigit(b byte) bool       { return digitTable[b] }
func isAlphaNumeric(b byte) bool { return alphaNumericTable[b] }
