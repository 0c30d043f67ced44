package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomldoc/tomldoc/internal/token"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Token
	}{
		{
			name:  "key value",
			input: `title = "TOML Example"`,
			want: []token.Token{
				{Type: token.TEXT, Literal: "title"},
				{Type: token.EQUALS, Literal: "="},
				{Type: token.TEXT, Literal: "TOML Example"},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "trailing whitespace before equals is trimmed",
			input: "key   = 1",
			want: []token.Token{
				{Type: token.TEXT, Literal: "key"},
				{Type: token.EQUALS, Literal: "="},
				{Type: token.TEXT, Literal: "1"},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "bare run keeps trailing whitespace before newline",
			input: "key = value  \nnext = 2",
			want: []token.Token{
				{Type: token.TEXT, Literal: "key"},
				{Type: token.EQUALS, Literal: "="},
				{Type: token.TEXT, Literal: "value  "},
				{Type: token.TEXT, Literal: "next"},
				{Type: token.EQUALS, Literal: "="},
				{Type: token.TEXT, Literal: "2"},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "punctuation",
			input: "[ ] { } , =",
			want: []token.Token{
				{Type: token.LBRACK, Literal: "["},
				{Type: token.RBRACK, Literal: "]"},
				{Type: token.LBRACE, Literal: "{"},
				{Type: token.RBRACE, Literal: "}"},
				{Type: token.COMMA, Literal: ","},
				{Type: token.EQUALS, Literal: "="},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "table header",
			input: "[owner]",
			want: []token.Token{
				{Type: token.LBRACK, Literal: "["},
				{Type: token.TEXT, Literal: "owner"},
				{Type: token.RBRACK, Literal: "]"},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "single quoted string",
			input: "name = 'Tom Preston'",
			want: []token.Token{
				{Type: token.TEXT, Literal: "name"},
				{Type: token.EQUALS, Literal: "="},
				{Type: token.TEXT, Literal: "Tom Preston"},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "comment body is one token",
			input: "# служебный: a, b = [c]\nkey = 1",
			want: []token.Token{
				{Type: token.COMMENT, Literal: "#"},
				{Type: token.TEXT, Literal: "служебный: a, b = [c]"},
				{Type: token.TEXT, Literal: "key"},
				{Type: token.EQUALS, Literal: "="},
				{Type: token.TEXT, Literal: "1"},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "empty comment body",
			input: "#\nkey = 1",
			want: []token.Token{
				{Type: token.COMMENT, Literal: "#"},
				{Type: token.TEXT, Literal: ""},
				{Type: token.TEXT, Literal: "key"},
				{Type: token.EQUALS, Literal: "="},
				{Type: token.TEXT, Literal: "1"},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "byte order mark is skipped",
			input: "\xef\xbb\xbfkey = 1",
			want: []token.Token{
				{Type: token.TEXT, Literal: "key"},
				{Type: token.EQUALS, Literal: "="},
				{Type: token.TEXT, Literal: "1"},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "unterminated string",
			input: `title = "abc`,
			want: []token.Token{
				{Type: token.TEXT, Literal: "title"},
				{Type: token.EQUALS, Literal: "="},
				{Type: token.ILLEGAL, Literal: "unterminated string literal"},
			},
		},
		{
			name:  "empty input",
			input: "",
			want: []token.Token{
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "crlf line endings",
			input: "a = 1\r\nb = 2",
			want: []token.Token{
				{Type: token.TEXT, Literal: "a"},
				{Type: token.EQUALS, Literal: "="},
				{Type: token.TEXT, Literal: "1"},
				{Type: token.TEXT, Literal: "b"},
				{Type: token.EQUALS, Literal: "="},
				{Type: token.TEXT, Literal: "2"},
				{Type: token.EOF, Literal: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New([]byte(tt.input))
			for _, want := range tt.want {
				got := s.Next()
				require.Equal(t, want.Type, got.Type)
				require.Equal(t, want.Literal, got.Literal)
			}
		})
	}
}

func TestPeekIsIdempotent(t *testing.T) {
	s := New([]byte("key = 1"))

	first := s.Peek()
	for range 5 {
		require.Equal(t, first, s.Peek())
	}

	got := s.Next()
	require.Equal(t, first, got)
	require.Equal(t, token.EQUALS, s.Peek().Type)
}

func TestEOFIsSticky(t *testing.T) {
	s := New([]byte("a"))
	require.Equal(t, token.TEXT, s.Next().Type)
	for range 3 {
		require.Equal(t, token.EOF, s.Next().Type)
	}
}

func TestTokenPositions(t *testing.T) {
	s := New([]byte("a = 1\nbb = 2"))

	a := s.Next()
	require.Equal(t, 1, a.Line)
	require.Equal(t, 0, a.Offset)

	s.Next() // '='
	s.Next() // '1'

	bb := s.Next()
	require.Equal(t, "bb", bb.Literal)
	require.Equal(t, 2, bb.Line)
	require.Equal(t, 6, bb.Offset)
}
