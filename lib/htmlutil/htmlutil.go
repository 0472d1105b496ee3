package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// CleanText extracts the text content of a node and normalizes it:
// non-printable characters are dropped, surrounding whitespace is
// trimmed and inner runs of whitespace collapse to a single space.
func CleanText(node *html.Node) string {
	var buffer bytes.Buffer
	writeText(node, &buffer)

	out := strings.Builder{}
	for _, c := range buffer.String() {
		if unicode.IsSpace(c) {
			out.WriteRune(' ')
			continue
		}
		if unicode.IsPrint(c) {
			out.WriteRune(c)
		}
	}
	text := strings.TrimSpace(out.String())
	return innerWhitespace.ReplaceAllString(text, " ")
}

func writeText(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		writeText(child, buffer)
	}
}

// Cells returns the cleaned text of every <td> inside a table row.
func Cells(row *goquery.Selection) []string {
	var cells []string
	row.Find("td").Each(func(_ int, td *goquery.Selection) {
		text := ""
		if len(td.Nodes) > 0 {
			text = CleanText(td.Nodes[0])
		}
		cells = append(cells, text)
	})
	return cells
}

// Columns names the positions of a fixed-width table row so callers
// don't scatter index literals around. A name mapped past the end of
// a short row reads as the empty string.
type Columns map[string]int

func (c Columns) Get(cells []string, name string) string {
	idx, ok := c[name]
	if !ok || idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}
