package wiki

import (
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/baxromumarov/quiz-tools/internal/config"
)

const (
	SectionHonours = "Honours"
	SectionRecords = "Records"
	SectionHistory = "History"
	SectionPlayers = "Players"
)

type LineKind string

const (
	KindQuote  LineKind = "QUOTE"
	KindHeader LineKind = "HEADER"
)

type Line struct {
	Kind LineKind
	Text string
}

// Section is the output of one extraction pass. Found reports whether the
// section's anchor was present; a found section may still have no lines.
type Section struct {
	Name  string
	Found bool
	Lines []Line
}

func (s *Section) quote(text string) {
	s.Lines = append(s.Lines, Line{Kind: KindQuote, Text: text})
}

func (s *Section) header(text string) {
	s.Lines = append(s.Lines, Line{Kind: KindHeader, Text: text})
}

// quoteEach adds the text of every node in sel, skipping empty ones.
func (s *Section) quoteEach(sel *goquery.Selection) {
	sel.Each(func(_ int, item *goquery.Selection) {
		if text := selectionText(item); text != "" {
			s.quote(text)
		}
	})
}

// Quotes counts the QUOTE lines in s.
func (s Section) Quotes() int {
	n := 0
	for _, line := range s.Lines {
		if line.Kind == KindQuote {
			n++
		}
	}
	return n
}

type Extractor struct {
	cfg config.Extractor
}

func NewExtractor(cfg config.Extractor) *Extractor {
	return &Extractor{cfg: cfg}
}

// Extract runs every section in output order. A missing anchor only empties
// its own section.
func (e *Extractor) Extract(doc *Document) []Section {
	return []Section{
		e.Honours(doc),
		e.Records(doc),
		e.History(doc),
		e.Players(doc),
	}
}

// Honours collects table rows and list items between the Honours heading and
// the next top-level heading.
func (e *Extractor) Honours(doc *Document) Section {
	sec := Section{Name: SectionHonours}
	start := doc.sectionStart(e.cfg.HonoursID)
	if start.Length() == 0 {
		slog.Debug("section anchor missing", "section", sec.Name, "id", e.cfg.HonoursID)
		return sec
	}
	sec.Found = true

	for cur := start.Next(); cur.Length() > 0; cur = cur.Next() {
		if isTopHeading(cur) {
			break
		}
		switch goquery.NodeName(cur) {
		case "table":
			sec.quoteEach(cur.Find("tr"))
		case "ul":
			sec.quoteEach(cur.Find("li"))
		}
	}
	return sec
}

// Records collects list items from at most RecordsMaxHops siblings after the
// Records heading. The page has no reliable end marker for this block.
func (e *Extractor) Records(doc *Document) Section {
	sec := Section{Name: SectionRecords}
	start := doc.sectionStart(e.cfg.RecordsID)
	if start.Length() == 0 {
		slog.Debug("section anchor missing", "section", sec.Name, "id", e.cfg.RecordsID)
		return sec
	}
	sec.Found = true

	cur := start.Next()
	for hops := 0; cur.Length() > 0 && hops < e.cfg.RecordsMaxHops; hops++ {
		if goquery.NodeName(cur) == "ul" {
			sec.quoteEach(cur.Find("li"))
		}
		cur = cur.Next()
	}
	return sec
}

// History emits every h2/h3 under the content root whose text names an era,
// followed by the first paragraph sibling of that heading.
func (e *Extractor) History(doc *Document) Section {
	sec := Section{Name: SectionHistory}
	content := doc.ByID(e.cfg.ContentRootID)
	if content.Length() == 0 {
		slog.Debug("section anchor missing", "section", sec.Name, "id", e.cfg.ContentRootID)
		return sec
	}
	sec.Found = true

	root := content.Get(0)
	var headings []*html.Node
	walk(root, func(n *html.Node) bool {
		if n != root && n.Type == html.ElementNode && (n.Data == "h2" || n.Data == "h3") {
			headings = append(headings, n)
		}
		return true
	})

	for _, h := range headings {
		text := Text(h)
		if !containsAny(text, e.cfg.HistoryKeywords) {
			continue
		}
		sec.header(text)
		if p := content.FindNodes(h).NextAllFiltered("p").First(); p.Length() > 0 {
			sec.quote(selectionText(p))
		}
	}
	return sec
}

// Players emits the rows of the first table after the squad heading that
// contain a digit; header and group rows carry none.
func (e *Extractor) Players(doc *Document) Section {
	sec := Section{Name: SectionPlayers}
	anchor := doc.first(func(n *html.Node) bool {
		return n.Data == "h3" && attr(n, "id") == e.cfg.PlayersID
	})
	if anchor.Length() == 0 {
		slog.Debug("section anchor missing", "section", sec.Name, "id", e.cfg.PlayersID)
		return sec
	}
	sec.Found = true

	table := nextElement(doc.root, anchor.Get(0), "table")
	if table == nil {
		return sec
	}
	doc.doc.FindNodes(table).Find("tr").Each(func(_ int, row *goquery.Selection) {
		if text := selectionText(row); hasDigit(text) {
			sec.quote(text)
		}
	})
	return sec
}

func isTopHeading(s *goquery.Selection) bool {
	switch goquery.NodeName(s) {
	case "h2":
		return true
	case "div":
		return s.HasClass("mw-heading")
	}
	return false
}
