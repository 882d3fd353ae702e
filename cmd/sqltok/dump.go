package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/oarkflow/sqltoken"
)

// dumpOptions controls how tokenizeAndDump renders a token stream.
type dumpOptions struct {
	json        bool
	skipTrivia  bool
}

// jsonToken is the wire shape for --json output: Text is encoded as a JSON
// string, so control bytes inside (e.g. from an unterminated string) are
// escaped and round-trip safely.
type jsonToken struct {
	Kind string `json:"kind"`
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
	Text string `json:"text"`
}

// tokenizeAndDump tokenizes src and writes one line per token to w,
// stopping after EndOfStream. With opts.skipTrivia, Whitespace and
// Comment tokens are elided via tokstream.SkipTrivia instead of being
// filtered ad hoc here.
func tokenizeAndDump(w io.Writer, src []byte, opts dumpOptions) error {
	sc := sqltoken.New(src)
	stream := sqltoken.NewStream(sc)

	enc := json.NewEncoder(w)
	for {
		var tok sqltoken.Token
		if opts.skipTrivia {
			tok = stream.SkipTrivia()
		} else {
			tok = stream.Next()
		}

		if opts.json {
			if err := enc.Encode(jsonToken{
				Kind: tok.Kind.String(),
				Line: tok.Line,
				Col:  tok.Col,
				Text: tok.Text(),
			}); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(w, "%5s:%-5s %-34s %s\n",
				strconv.Itoa(int(tok.Line)), strconv.Itoa(int(tok.Col)),
				tok.Kind, quoteLexeme(tok.Raw))
		}

		if tok.Kind == sqltoken.EndOfStream {
			return nil
		}
	}
}

// quoteLexeme renders a lexeme for human-readable dumps, escaping control
// bytes so a Comment or StringLiteral containing a newline doesn't break
// the one-token-per-line output.
func quoteLexeme(raw []byte) string {
	return strconv.Quote(string(raw))
}
