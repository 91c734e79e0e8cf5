package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// blockElements end the current line when rendered as text
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "tr": true, "li": true, "table": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "section": true, "article": true, "header": true,
	"footer": true, "address": true, "blockquote": true, "hr": true,
}

// HTMLToText converts an HTML e-mail signature to plain text lines.
// Block elements become line breaks; mailto: and tel: link targets that do
// not already appear in the text are appended as extra lines.
func HTMLToText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, noscript, iframe, head").Remove()

	var buf strings.Builder
	for _, n := range doc.Selection.Nodes {
		writeText(&buf, n)
	}
	text := buf.String()

	var extra []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		value, line := linkLine(href)
		if value != "" && !strings.Contains(text, value) {
			extra = append(extra, line)
		}
	})

	lines := cleanLines(text)
	lines = append(lines, extra...)
	return strings.Join(lines, "\n"), nil
}

// writeText walks the node tree, emitting visible text
func writeText(buf *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		buf.WriteString(n.Data)
		return
	case html.ElementNode:
		if blockElements[n.Data] {
			buf.WriteString("\n")
		}
		if n.Data == "td" || n.Data == "th" {
			// table cells render as columns
			buf.WriteString("   ")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(buf, c)
	}

	if n.Type == html.ElementNode && blockElements[n.Data] {
		buf.WriteString("\n")
	}
}

// linkLine turns a mailto: or tel: href into its value and a text line
func linkLine(href string) (string, string) {
	href = strings.TrimSpace(href)
	lower := strings.ToLower(href)
	switch {
	case strings.HasPrefix(lower, "mailto:"):
		addr := href[len("mailto:"):]
		addr, _, _ = strings.Cut(addr, "?")
		if unescaped, err := url.PathUnescape(addr); err == nil {
			addr = unescaped
		}
		addr = strings.TrimSpace(addr)
		return addr, addr
	case strings.HasPrefix(lower, "tel:"):
		number := strings.TrimSpace(href[len("tel:"):])
		if unescaped, err := url.PathUnescape(number); err == nil {
			number = unescaped
		}
		if number == "" {
			return "", ""
		}
		return number, "Tel: " + number
	}
	return "", ""
}

func cleanLines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(strings.ReplaceAll(l, "\u00a0", " "))
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
