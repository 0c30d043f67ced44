/*
Package tomldoc parses a practical subset of TOML into an ordered document
tree and serializes that tree back to text.

The tree mirrors the shape of the source: a Document holds top-level
key-values and named tables, a Table holds key-values, and every value is a
tagged Value variant (text, number, boolean, date-time, timespan, array or
inline table). Order is preserved everywhere and nothing is merged or
deduplicated, which makes the package suitable for tooling that rewrites
configuration files.

Parsing a document:

	doc, err := tomldoc.Parse([]byte(input))
	if err != nil {
		// *ParseError with line/column; errors.Is matches the kind
	}

	owner, err := doc.GetTable("owner")
	if err != nil {
		// errors.Is(err, tomldoc.ErrMissingTable)
	}
	name, _ := owner.GetValue("name")
	s, err := name.Text() // ErrTypeMismatch if name is not text

TryParse is the non-erroring boundary for callers that only need a
success flag:

	doc, ok := tomldoc.TryParse(data)

Building and serializing a document:

	doc := tomldoc.New()
	doc.AddText("title", "TOML Example")
	srv := tomldoc.NewTable("server")
	srv.AddNumber("port", 8080)
	doc.AddTable(srv)
	out := doc.String()

Scalar types are inferred from untyped text with a fixed probe order:
number, boolean, duration, offset date-time, local date-time, then text.
The subset deliberately omits multi-line strings, escape sequences,
integer/float distinction and offset preservation.
*/
package tomldoc
