package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeAndDumpText(t *testing.T) {
	var buf bytes.Buffer
	err := tokenizeAndDump(&buf, []byte("SELECT 1"), dumpOptions{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "BareWord")
	assert.Contains(t, out, `"SELECT"`)
	assert.Contains(t, out, "Number")
	assert.Contains(t, out, "EndOfStream")
}

func TestTokenizeAndDumpSkipTrivia(t *testing.T) {
	var buf bytes.Buffer
	err := tokenizeAndDump(&buf, []byte("a  b"), dumpOptions{skipTrivia: true})
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "Whitespace")
	assert.Equal(t, 3, strings.Count(out, "\n")) // two BareWords + EndOfStream
}

func TestTokenizeAndDumpJSON(t *testing.T) {
	var buf bytes.Buffer
	err := tokenizeAndDump(&buf, []byte("a,"), dumpOptions{json: true})
	require.NoError(t, err)

	dec := json.NewDecoder(&buf)

	var word jsonToken
	require.NoError(t, dec.Decode(&word))
	assert.Equal(t, "BareWord", word.Kind)
	assert.Equal(t, "a", word.Text)
	assert.Equal(t, uint32(1), word.Line)
	assert.Equal(t, uint32(1), word.Col)

	var comma jsonToken
	require.NoError(t, dec.Decode(&comma))
	assert.Equal(t, ",", comma.Kind)

	var eof jsonToken
	require.NoError(t, dec.Decode(&eof))
	assert.Equal(t, "EndOfStream", eof.Kind)
}

func TestQuoteLexemeEscapesControlBytes(t *testing.T) {
	got := quoteLexeme([]byte("a\nb"))
	assert.Equal(t, `"a\nb"`, got)
}
