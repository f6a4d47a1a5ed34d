package wiki

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baxromumarov/quiz-tools/internal/config"
	"github.com/baxromumarov/quiz-tools/internal/httpx"
)

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}

func TestRender(t *testing.T) {
	sections := []Section{
		{Name: SectionHonours, Lines: quotes("La Liga 27")},
		{Name: SectionRecords},
		{Name: SectionHistory, Lines: []Line{
			{Kind: KindHeader, Text: "History"},
			{Kind: KindQuote, Text: "Founded in 1899."},
		}},
		{Name: SectionPlayers},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "https://en.wikipedia.org/wiki/FC_Barcelona", sections))

	want := `SOURCE URL: https://en.wikipedia.org/wiki/FC_Barcelona

=== HONOURS ===
QUOTE: La Liga 27

=== RECORDS ===

=== HISTORY ===
HEADER: History
QUOTE: Founded in 1899.

=== PLAYERS ===
`
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRender_WriteError(t *testing.T) {
	err := Render(failingWriter{}, "u", []Section{{Name: SectionHonours}})
	assert.Error(t, err)
}

func TestRun_FromSavedPage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fc_barcelona_wiki.html")
	require.NoError(t, os.WriteFile(path, []byte(articleHTML(historyBlock, honoursBlock, recordsBlock, playersBlock)), 0o644))

	cfg := config.DefaultExtractor()
	cfg.InputFile = path

	var out bytes.Buffer
	sections, err := Run(context.Background(), httpx.NewLocalFetcher(""), cfg, &out)
	require.NoError(t, err)
	require.Len(t, sections, 4)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "SOURCE URL: https://en.wikipedia.org/wiki/FC_Barcelona\n"))
	assert.Contains(t, text, "\n=== HONOURS ===\nQUOTE: Type Competition\n")
	assert.Contains(t, text, "QUOTE: Top scorer: Messi (672)\n")
	assert.Contains(t, text, "HEADER: Early years (1899–1922)\nQUOTE: The club won its first title.\n")
	assert.Contains(t, text, "\n=== PLAYERS ===\nQUOTE: 1 GK Marc-André ter Stegen\nQUOTE: 8 MF Pedri\n")
	assert.NotContains(t, text, "Out on loan")
}

func TestRun_MissingFile(t *testing.T) {
	cfg := config.DefaultExtractor()
	cfg.InputFile = filepath.Join(t.TempDir(), "fc_barcelona_wiki.html")

	var out bytes.Buffer
	_, err := Run(context.Background(), httpx.NewLocalFetcher(""), cfg, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, out.String())
}
