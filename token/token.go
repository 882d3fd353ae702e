// Package token defines the closed set of lexical token kinds produced by
// package scanner and the Token value type that carries one lexeme.
//
// A Token never owns memory: Raw is a sub-slice of whatever buffer the
// scanner was constructed over, and Begin/End are byte offsets into that
// same buffer. Callers that need an owned copy should copy Raw themselves.
package token

// Kind identifies the classification of a single token. The set is closed:
// no keyword recognition, value parsing, or Unicode-normalization variants
// exist here — those are explicitly the parser's job, not the tokenizer's.
type Kind uint8

const (
	// Structural
	EndOfStream Kind = iota
	Whitespace
	Comment

	// Atoms
	BareWord
	Number
	StringLiteral
	QuotedIdentifier

	// Punctuation
	OpeningRoundBracket
	ClosingRoundBracket
	OpeningSquareBracket
	ClosingSquareBracket
	Comma
	Semicolon
	Dot
	QuestionMark
	Colon

	// Operators
	Plus
	Minus
	Asterisk
	Division
	Modulo
	Equals
	NotEquals
	Less
	Greater
	LessOrEquals
	GreaterOrEquals
	Concatenation // ||
	Arrow         // ->

	// Errors
	Error                             // unrecognized byte
	ErrorMultilineCommentIsNotClosed
	ErrorSingleQuoteIsNotClosed
	ErrorDoubleQuoteIsNotClosed
	ErrorBackQuoteIsNotClosed
	ErrorSingleExclamationMark // bare ! not followed by =
	ErrorSinglePipeMark        // bare | not followed by |
	ErrorWordWithoutWhitespace // word character abutting a prior word
)

// String returns a human-readable name for k, or "UNKNOWN" if k is outside
// the closed enumeration above.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

var kindNames = [...]string{
	EndOfStream:                       "EndOfStream",
	Whitespace:                        "Whitespace",
	Comment:                           "Comment",
	BareWord:                          "BareWord",
	Number:                            "Number",
	StringLiteral:                     "StringLiteral",
	QuotedIdentifier:                  "QuotedIdentifier",
	OpeningRoundBracket:               "(",
	ClosingRoundBracket:               ")",
	OpeningSquareBracket:              "[",
	ClosingSquareBracket:              "]",
	Comma:                             ",",
	Semicolon:                         ";",
	Dot:                               ".",
	QuestionMark:                      "?",
	Colon:                             ":",
	Plus:                              "+",
	Minus:                             "-",
	Asterisk:                          "*",
	Division:                         "/",
	Modulo:                           "%",
	Equals:                           "=",
	NotEquals:                        "!=",
	Less:                             "<",
	Greater:                          ">",
	LessOrEquals:                     "<=",
	GreaterOrEquals:                  ">=",
	Concatenation:                    "||",
	Arrow:                            "->",
	Error:                            "Error",
	ErrorMultilineCommentIsNotClosed: "ErrorMultilineCommentIsNotClosed",
	ErrorSingleQuoteIsNotClosed:      "ErrorSingleQuoteIsNotClosed",
	ErrorDoubleQuoteIsNotClosed:      "ErrorDoubleQuoteIsNotClosed",
	ErrorBackQuoteIsNotClosed:        "ErrorBackQuoteIsNotClosed",
	ErrorSingleExclamationMark:       "ErrorSingleExclamationMark",
	ErrorSinglePipeMark:              "ErrorSinglePipeMark",
	ErrorWordWithoutWhitespace:       "ErrorWordWithoutWhitespace",
}

// IsError reports whether k is one of the Error* variants.
func (k Kind) IsError() bool {
	return k >= Error
}

// IsTrivia reports whether k carries no semantic content for a parser
// beyond source reconstruction (whitespace and comments).
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}

// Token is a typed, contiguous byte range of some buffer, plus 1-based
// line/column of its first byte for diagnostics. It holds no reference to
// anything but that buffer: copying a Token is cheap and safe as long as
// the backing buffer outlives it.
type Token struct {
	Kind       Kind
	Begin, End int    // byte offsets into the scanned buffer, End exclusive
	Raw        []byte // buf[Begin:End]; nil for a zero-value Token and for EndOfStream over a nil buffer
	Line, Col  uint32
}

// IsError reports whether t.Kind is one of the Error* variants.
func (t Token) IsError() bool { return t.Kind.IsError() }

// IsSignificant reports whether t carries semantic content, i.e. is
// neither Whitespace nor Comment.
func (t Token) IsSignificant() bool { return !t.Kind.IsTrivia() }

// Text returns the token's lexeme as a string. It allocates (a string copy
// of Raw); hot paths that only need to compare bytes should use Raw
// directly instead.
func (t Token) Text() string { return string(t.Raw) }
