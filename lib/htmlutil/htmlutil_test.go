package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseRow(t testing.TB, html string) *goquery.Selection {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		"<table>" + html + "</table>",
	))
	require.NoError(t, err)
	return doc.Find("tr")
}

func TestCells(t *testing.T) {
	row := parseRow(t, `<tr>
		<td> one </td>
		<td><a href="#">two
		wrapped</a></td>
		<td></td>
	</tr>`)

	require.Equal(t, []string{"one", "two wrapped", ""}, Cells(row))
}

func TestColumns(t *testing.T) {
	columns := Columns{"first": 0, "last": 2}
	cells := []string{"a", "b", "c"}

	require.Equal(t, "a", columns.Get(cells, "first"))
	require.Equal(t, "c", columns.Get(cells, "last"))
	// unmapped names and short rows read as empty, not a panic
	require.Equal(t, "", columns.Get(cells, "missing"))
	require.Equal(t, "", columns.Get([]string{"a"}, "last"))
}
