package tomldoc_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tomldoc/tomldoc"
)

func TestEncodeJSON(t *testing.T) {
	doc := tomldoc.New()
	doc.AddText("title", "TOML Example")
	doc.AddArray("ports", tomldoc.NewNumberArray(8000, 8001, 8002))
	doc.AddBoolean("enabled", true)

	owner := tomldoc.NewTable("owner")
	owner.AddText("name", "Tom Preston-Werner")
	owner.AddDateTime("dob", time.Date(1979, 5, 27, 7, 32, 0, 0, time.UTC))
	owner.AddTimeSpan("uptime", 90*time.Minute)
	doc.AddTable(owner)

	var sb strings.Builder
	require.NoError(t, doc.EncodeJSON(&sb))

	want := `{"title":"TOML Example","ports":[8000,8001,8002],"enabled":true,` +
		`"owner":{"name":"Tom Preston-Werner","dob":"1979-05-27T07:32:00Z","uptime":"1h30m0s"}}`
	require.JSONEq(t, want, sb.String())
}

func TestEncodeJSON_PreservesOrder(t *testing.T) {
	doc, err := tomldoc.Parse([]byte("b = 1\na = 2\nc = 3\n"))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, doc.EncodeJSON(&sb))
	require.Equal(t, `{"b":1,"a":2,"c":3}`, strings.TrimSpace(sb.String()))
}

func TestEncodeJSON_InlineTableAndDuplicates(t *testing.T) {
	doc, err := tomldoc.Parse([]byte("p = { x = 1 }\nk = 1\nk = 2\n"))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, doc.EncodeJSON(&sb))
	require.Equal(t, `{"p":{"x":1},"k":1,"k":2}`, strings.TrimSpace(sb.String()))
}

func TestEncodeJSON_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, tomldoc.New().EncodeJSON(&sb))
	require.Equal(t, "{}", strings.TrimSpace(sb.String()))
}
