package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	AddQuotes("Honours", 3)
	AddQuotes("Honours", 2)
	AddQuotes("Players", 0)
	AddQuotes("", 1)
	IncSectionMissing("Records")
	AddQuestionsMerged(7)
	IncError(ErrorParsing, "merger")
	IncError("", "")

	snap := Snapshot()
	assert.Equal(t, uint64(6), snap.QuotesTotal)
	assert.Equal(t, map[string]uint64{"Honours": 5, "unknown": 1}, snap.QuotesBySection)
	assert.Equal(t, map[string]uint64{"Records": 1}, snap.SectionsMissing)
	assert.Equal(t, uint64(7), snap.QuestionsMerged)
	assert.Equal(t, uint64(2), snap.ErrorsTotal)
	assert.Equal(t, map[string]uint64{ErrorParsing: 1, "unknown": 1}, snap.ErrorsByType)
	assert.Equal(t, map[string]uint64{"merger": 1, "unknown": 1}, snap.ErrorsByComponent)
}

func TestSnapshot_IsCopy(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	AddQuotes("History", 1)
	snap := Snapshot()
	snap.QuotesBySection["History"] = 99

	assert.Equal(t, uint64(1), Snapshot().QuotesBySection["History"])
}

func TestReset(t *testing.T) {
	AddQuestionsMerged(3)
	Reset()

	snap := Snapshot()
	assert.Zero(t, snap.QuestionsMerged)
	assert.Empty(t, snap.ErrorsByType)
}
