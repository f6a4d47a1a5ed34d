package wiki

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const historyBlock = `
<h2>History</h2>
<p>Founded in 1899 by Joan Gamper.</p>
<h3>Early years (1899–1922)</h3>
<p>The club <b>won</b> its first title.</p>
<p>Second paragraph.</p>
<h3>Stadium</h3>
<p>Camp Nou.</p>`

const honoursBlock = `
<div class="mw-heading mw-heading2"><h2 id="Honours">Honours</h2><span class="mw-editsection">edit</span></div>
<table class="wikitable">
<tr><th>Type</th><th>Competition</th></tr>
<tr><td>Domestic</td><td>La Liga <style>.t{color:red}</style>27</td></tr>
</table>
<ul><li>Copa del Rey: 31</li><li>  </li></ul>
<p>Not collected.</p>`

const recordsBlock = `
<div class="mw-heading mw-heading2"><h2 id="Records">Records</h2></div>
<ul><li>Most appearances: Xavi (767)</li></ul>
<p>filler</p>
<ul><li>Top scorer: Messi (672)</li></ul>`

const playersBlock = `
<div class="mw-heading mw-heading2"><h2 id="Players">Players</h2></div>
<div class="mw-heading mw-heading3"><h3 id="Current_squad">Current squad</h3></div>
<p>As of 1 July 2024.</p>
<table>
<tr><th>No.</th><th>Pos.</th><th>Player</th></tr>
<tr><td>1</td><td>GK</td><td>Marc-André ter Stegen</td></tr>
<tr><td colspan="3">Out on loan</td></tr>
<tr><td>8</td><td>MF</td><td>Pedri</td></tr>
</table>`

func articleHTML(blocks ...string) string {
	return `<!DOCTYPE html><html><head><meta charset="UTF-8"><title>FC Barcelona - Wikipedia</title></head>
<body><div id="mw-content-text"><div class="mw-parser-output">` +
		strings.Join(blocks, "\n") +
		`</div></div></body></html>`
}

func parseArticle(t *testing.T, blocks ...string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(articleHTML(blocks...)), "text/html; charset=utf-8")
	require.NoError(t, err)
	return doc
}
