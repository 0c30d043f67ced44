package token

// Type is the type of a token.
type Type string

// Token represents a lexical token cut from the input. Literal holds the
// token text with any surrounding quotes already stripped; Offset is the
// byte offset of the first literal character in the input.
type Token struct {
	Type    Type
	Literal string
	Offset  int
	Line    int
	Column  int
}

const (
	ILLEGAL Type = "ILLEGAL" // a lexical error; Literal carries the message
	EOF     Type = "EOF"

	// TEXT covers bare runs and quoted strings alike. Whether the text is a
	// key, a scalar literal or a comment body depends on where it appears,
	// so classifying it is the parser's job.
	TEXT Type = "TEXT"

	COMMENT Type = "#"
	EQUALS  Type = "="
	COMMA   Type = ","
	LBRACK  Type = "["
	RBRACK  Type = "]"
	LBRACE  Type = "{"
	RBRACE  Type = "}"
)

// Len returns the byte length of the token literal.
func (t Token) Len() int { return len(t.Literal) }
