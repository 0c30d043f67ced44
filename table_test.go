package tomldoc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomldoc/tomldoc"
)

func TestTable_Build(t *testing.T) {
	tbl := tomldoc.NewTable("server")
	require.Equal(t, "server", tbl.Name())

	tbl.AddText("host", "localhost")
	tbl.AddNumber("port", 8080)
	tbl.AddBoolean("tls", false)
	require.Len(t, tbl.KeyValues(), 3)

	v, err := tbl.GetValue("port")
	require.NoError(t, err)
	f, err := v.Number()
	require.NoError(t, err)
	require.Equal(t, 8080.0, f)

	_, err = tbl.GetValue("absent")
	require.ErrorIs(t, err, tomldoc.ErrMissingKey)
}

func TestTable_Serialization(t *testing.T) {
	tbl := tomldoc.NewTable("owner")
	tbl.AddText("name", "Tom")
	tbl.AddText("org", "GitHub Inc")

	doc := tomldoc.New()
	doc.AddTable(tbl)

	want := "[owner]\nname = Tom\norg = \"GitHub Inc\"\n"
	require.Equal(t, want, doc.String())
}

func TestDocument_Serialization(t *testing.T) {
	doc := tomldoc.New()
	doc.AddText("title", "TOML Example")
	doc.AddNumber("version", 2)

	first := tomldoc.NewTable("first")
	first.AddNumber("x", 1)
	doc.AddTable(first)

	second := tomldoc.NewTable("second")
	second.AddBoolean("ok", true)
	doc.AddTable(second)

	want := "title = \"TOML Example\"\n" +
		"version = 2\n" +
		"\n[first]\nx = 1\n" +
		"\n[second]\nok = true\n"
	require.Equal(t, want, doc.String())
}

func TestParse_InlineTable(t *testing.T) {
	doc, err := tomldoc.Parse([]byte("point = { x = 1, y = 2 }\n"))
	require.NoError(t, err)

	v, err := doc.GetValue("point")
	require.NoError(t, err)
	require.Equal(t, tomldoc.KindTable, v.Kind())

	point, err := v.Table()
	require.NoError(t, err)
	require.Equal(t, "point", point.Name())
	require.Len(t, point.KeyValues(), 2)

	y, err := point.GetValue("y")
	require.NoError(t, err)
	f, err := y.Number()
	require.NoError(t, err)
	require.Equal(t, 2.0, f)
}

func TestParse_InlineTableNested(t *testing.T) {
	doc, err := tomldoc.Parse([]byte(`rect = { min = { x = 0, y = 0 }, max = { x = 4, y = 3 } }`))
	require.NoError(t, err)

	v, err := doc.GetValue("rect")
	require.NoError(t, err)
	rect, err := v.Table()
	require.NoError(t, err)

	maxV, err := rect.GetValue("max")
	require.NoError(t, err)
	maxT, err := maxV.Table()
	require.NoError(t, err)

	x, err := maxT.GetValue("x")
	require.NoError(t, err)
	f, err := x.Number()
	require.NoError(t, err)
	require.Equal(t, 4.0, f)
}

func TestInlineTable_Serialization(t *testing.T) {
	inner := tomldoc.NewTable("point")
	inner.AddNumber("x", 1)
	inner.AddNumber("y", 2)

	doc := tomldoc.New()
	doc.AddInlineTable("point", inner)

	require.Equal(t, "point = { x = 1, y = 2 }\n", doc.String())

	// And the inline form reparses to the same shape.
	doc2, err := tomldoc.Parse([]byte(doc.String()))
	require.NoError(t, err)
	v, err := doc2.GetValue("point")
	require.NoError(t, err)
	require.Equal(t, tomldoc.KindTable, v.Kind())
}

func TestParse_QuotedKeys(t *testing.T) {
	doc, err := tomldoc.Parse([]byte("\"my key\" = 1\n'other key' = 2\n"))
	require.NoError(t, err)
	require.True(t, doc.ContainsKey("my key"))
	require.True(t, doc.ContainsKey("other key"))
}

func TestParse_TableStopsAtNextHeader(t *testing.T) {
	input := "[a]\nx = 1\n[b]\ny = 2\n"
	doc, err := tomldoc.Parse([]byte(input))
	require.NoError(t, err)

	a, err := doc.GetTable("a")
	require.NoError(t, err)
	require.True(t, a.ContainsKey("x"))
	require.False(t, a.ContainsKey("y"))

	b, err := doc.GetTable("b")
	require.NoError(t, err)
	require.True(t, b.ContainsKey("y"))
}
