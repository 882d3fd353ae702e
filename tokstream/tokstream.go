// Package tokstream gives the downstream parser collaborator named in
// spec.md §1 a pull-based interface over a *scanner.Scanner: Next, Peek(n),
// and SkipTrivia. It classifies nothing beyond what scanner already
// produces — no keywords, no grammar, no AST. Its only job is to let a
// caller look ahead without keeping a token buffer of its own.
package tokstream

import (
	"github.com/oarkflow/sqltoken/scanner"
	"github.com/oarkflow/sqltoken/token"
)

// Stream buffers tokens pulled from a *scanner.Scanner so callers can peek
// ahead. The buffer is a monotonically growing slice, doubled on growth —
// adapted from the teacher's parser/arena.go bump allocator, repurposed
// here to hold token.Token values instead of raw parser-node bytes.
type Stream struct {
	sc        *scanner.Scanner
	lookahead []token.Token // tokens pulled but not yet consumed, in order
}

// New returns a Stream pulling from sc.
func New(sc *scanner.Scanner) *Stream {
	return &Stream{sc: sc}
}

// Next consumes and returns the next token, pulling from the underlying
// scanner if the lookahead buffer is empty.
func (s *Stream) Next() token.Token {
	if len(s.lookahead) == 0 {
		return s.pull()
	}
	t := s.lookahead[0]
	s.lookahead = appendShift(s.lookahead)
	return t
}

// Peek returns the token n positions ahead (0 is the next token to be
// returned by Next) without consuming it. Calling Peek never advances the
// stream's consumption position. Once the underlying scanner reaches
// EndOfStream, further Peek calls keep returning it — scanner.Scanner
// guarantees Next is idempotent at end of input, so Peek need not track
// that separately.
func (s *Stream) Peek(n int) token.Token {
	for len(s.lookahead) <= n {
		s.lookahead = append(s.lookahead, s.sc.Next())
	}
	return s.lookahead[n]
}

// SkipTrivia calls Next repeatedly until it returns a token that is
// neither Whitespace nor Comment (or EndOfStream), and returns that token.
// It saves callers that don't care about source reconstruction from
// re-implementing this loop at every call site.
func (s *Stream) SkipTrivia() token.Token {
	for {
		t := s.Next()
		if t.IsSignificant() || t.Kind == token.EndOfStream {
			return t
		}
	}
}

// pull fetches exactly one token directly from the scanner, bypassing the
// lookahead buffer (the fast path when nothing has been peeked).
func (s *Stream) pull() token.Token {
	return s.sc.Next()
}

// appendShift drops the first element of a lookahead buffer, reusing its
// backing array — the same "grow by doubling, never shrink the
// allocation" discipline as the teacher's arena, applied to consumption
// instead of allocation.
func appendShift(buf []token.Token) []token.Token {
	copy(buf, buf[1:])
	return buf[:len(buf)-1]
}
