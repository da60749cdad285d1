package fetch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var htmlTagPattern = regexp.MustCompile(`(?i)</?(p|br|ul|ol|li|div|b|strong|i|em|u|a|span|h[1-6])\b[^<>]*>`)

// LooksLikeHTML reports whether s contains markup produced by a rich-text editor.
func LooksLikeHTML(s string) bool {
	return htmlTagPattern.MatchString(s)
}

// HTMLToText flattens rich-text HTML into plain lines. Block elements start a new line
// and list items become "• " lines so the layout renders them as bullets.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style, noscript").Remove()

	var w textWriter
	w.walk(doc.Find("body"))
	w.flush()
	return strings.Join(w.lines, "\n"), nil
}

type textWriter struct {
	lines []string
	cur   strings.Builder
}

func (w *textWriter) walk(sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		switch goquery.NodeName(c) {
		case "#text":
			w.cur.WriteString(c.Text())
		case "br":
			w.flush()
		case "li":
			w.flush()
			w.cur.WriteString("• ")
			w.walk(c)
			w.flush()
		case "p", "div", "ul", "ol", "h1", "h2", "h3", "h4", "h5", "h6",
			"blockquote", "section", "tr", "pre":
			w.flush()
			w.walk(c)
			w.flush()
		default:
			w.walk(c)
		}
	})
}

func (w *textWriter) flush() {
	line := strings.Join(strings.Fields(w.cur.String()), " ")
	w.cur.Reset()
	if line == "" || line == "•" {
		return
	}
	w.lines = append(w.lines, line)
}
