// Package wiki pulls quiz source material out of a saved Wikipedia article.
package wiki

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Fetcher returns a page body and its Content-Type.
type Fetcher interface {
	FetchBytes(ctx context.Context, path string) ([]byte, string, error)
}

// Document is a parsed article. It is read-only once built.
type Document struct {
	root *html.Node
	doc  *goquery.Document
}

// Load fetches path and parses it.
func Load(ctx context.Context, fetcher Fetcher, path string) (*Document, error) {
	body, contentType, err := fetcher.FetchBytes(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("wiki load failed: %w", err)
	}
	return Parse(bytes.NewReader(body), contentType)
}

// Parse decodes r using the charset named by contentType (or sniffed from
// the markup when contentType has none) and builds the document tree.
func Parse(r io.Reader, contentType string) (*Document, error) {
	decoded, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("wiki decode failed: %w", err)
	}
	// Scripting off so <noscript> children parse as elements, not raw text.
	root, err := html.ParseWithOptions(decoded, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, fmt.Errorf("wiki parse failed: %w", err)
	}
	return &Document{
		root: root,
		doc:  goquery.NewDocumentFromNode(root),
	}, nil
}

// ByID returns the first element in document order whose id is id, or an
// empty selection.
func (d *Document) ByID(id string) *goquery.Selection {
	return d.first(func(n *html.Node) bool {
		return attr(n, "id") == id
	})
}

func (d *Document) first(match func(*html.Node) bool) *goquery.Selection {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && match(n) {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return d.doc.FindNodes()
	}
	return d.doc.FindNodes(found)
}

// sectionStart resolves a section anchor to the node its sibling walk starts
// from: the enclosing div.mw-heading wrapper when there is one.
func (d *Document) sectionStart(id string) *goquery.Selection {
	anchor := d.ByID(id)
	if anchor.Length() == 0 {
		return anchor
	}
	if wrapper := anchor.ParentsFiltered("div.mw-heading").First(); wrapper.Length() > 0 {
		return wrapper
	}
	return anchor
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}
