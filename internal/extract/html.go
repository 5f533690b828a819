package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// blockElements start a new line in the visible text so numerals in adjacent
// blocks never join into one run
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"tr": true, "td": true, "th": true, "section": true, "article": true,
	"header": true, "footer": true, "blockquote": true, "pre": true,
}

// VisibleText reduces an HTML fragment to its visible text, skipping scripts/styles.
// Inline markup is dropped without inserting separators, so "<b>3</b>人" reads as "3人".
func VisibleText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		block := false
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "template":
				return
			}
			block = blockElements[n.Data]
		}

		if block {
			buf.WriteString("\n")
		}

		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if block {
			buf.WriteString("\n")
		}
	}

	walk(doc)
	return strings.TrimSpace(buf.String()), nil
}
