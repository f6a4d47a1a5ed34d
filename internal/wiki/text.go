package wiki

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Strings under these elements are not page text.
var hiddenText = map[string]struct{}{
	"script":   {},
	"style":    {},
	"template": {},
	"rt":       {},
	"rp":       {},
}

// Text joins the trimmed, non-empty text nodes under n with single spaces.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var parts []string
	collectText(n, &parts)
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	switch n.Type {
	case html.TextNode:
		if s := strings.TrimSpace(n.Data); s != "" {
			*parts = append(*parts, s)
		}
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		if _, ok := hiddenText[n.Data]; ok {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// selectionText is Text of the first node in s.
func selectionText(s *goquery.Selection) string {
	if s == nil || s.Length() == 0 {
		return ""
	}
	return Text(s.Get(0))
}

// walk visits n and its descendants in document order until visit returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

// nextElement returns the first element named tag that follows anchor in
// document order, anchor's own descendants included.
func nextElement(root, anchor *html.Node, tag string) *html.Node {
	var (
		passed bool
		found  *html.Node
	)
	walk(root, func(n *html.Node) bool {
		if n == anchor {
			passed = true
			return true
		}
		if passed && n.Type == html.ElementNode && n.Data == tag {
			found = n
			return false
		}
		return true
	})
	return found
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if needle != "" && strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
