package wiki

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/baxromumarov/quiz-tools/internal/config"
)

// Render writes the source banner followed by each section's lines.
func Render(w io.Writer, sourceURL string, sections []Section) error {
	title := cases.Upper(language.English)
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "SOURCE URL: %s\n", sourceURL)
	for _, sec := range sections {
		fmt.Fprintf(bw, "\n=== %s ===\n", title.String(sec.Name))
		for _, line := range sec.Lines {
			fmt.Fprintf(bw, "%s: %s\n", line.Kind, line.Text)
		}
	}
	return bw.Flush()
}

// Run loads cfg.InputFile, extracts every section and renders them to w.
func Run(ctx context.Context, fetcher Fetcher, cfg config.Extractor, w io.Writer) ([]Section, error) {
	doc, err := Load(ctx, fetcher, cfg.InputFile)
	if err != nil {
		return nil, err
	}
	sections := NewExtractor(cfg).Extract(doc)
	if err := Render(w, cfg.SourceURL, sections); err != nil {
		return sections, fmt.Errorf("wiki render failed: %w", err)
	}
	return sections, nil
}
