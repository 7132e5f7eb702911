package snbt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	cases := []struct {
		in          string
		single, dbl string
	}{
		{``, `''`, `""`},
		{`Someone`, `'Someone'`, `"Someone"`},
		{`["", {"text": "a"}]`, `'["", {"text": "a"}]'`, `"[\"\", {\"text\": \"a\"}]"`},
		{`it's`, `'it\'s'`, `"it's"`},
		{`{"text": "\"q\""}`, `'{"text": "\\"q\\""}'`, `"{\"text\": \"\\\"q\\\"\"}"`},
	}
	for _, c := range cases {
		assert.Equal(t, c.single, QuoteSingle(c.in), c.in)
		assert.Equal(t, c.dbl, QuoteDouble(c.in), c.in)
	}
}

func TestUnquote(t *testing.T) {
	for _, s := range []string{``, `a'b"c`, `back\slash\`, `\\'\"`, "new\nline"} {
		for _, q := range []byte{'"', '\''} {
			got, ok := Unquote(Quote(s, q))
			assert.True(t, ok, s)
			assert.Equal(t, s, got)
		}
	}

	for _, bad := range []string{``, `"`, `'abc"`, `"a\n"`, `"a"b"`, `abc`} {
		_, ok := Unquote(bad)
		assert.False(t, ok, bad)
	}
}
