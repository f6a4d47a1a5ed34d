package observability

import (
	"sync"
	"sync/atomic"
)

type StatsSnapshot struct {
	QuotesTotal       uint64            `json:"quotes_total"`
	QuestionsMerged   uint64            `json:"questions_merged"`
	ErrorsTotal       uint64            `json:"errors_total"`
	QuotesBySection   map[string]uint64 `json:"quotes_by_section,omitempty"`
	SectionsMissing   map[string]uint64 `json:"sections_missing,omitempty"`
	ErrorsByType      map[string]uint64 `json:"errors_by_type,omitempty"`
	ErrorsByComponent map[string]uint64 `json:"errors_by_component,omitempty"`
}

var (
	quotesTotal     uint64
	questionsMerged uint64
	errorsTotal     uint64

	statsMu           sync.Mutex
	quotesBySection   = map[string]uint64{}
	sectionsMissing   = map[string]uint64{}
	errorsByType      = map[string]uint64{}
	errorsByComponent = map[string]uint64{}
)

func AddQuotes(section string, n int) {
	if n <= 0 {
		return
	}
	if section == "" {
		section = "unknown"
	}
	atomic.AddUint64(&quotesTotal, uint64(n))
	statsMu.Lock()
	quotesBySection[section] += uint64(n)
	statsMu.Unlock()
}

func IncSectionMissing(section string) {
	if section == "" {
		section = "unknown"
	}
	statsMu.Lock()
	sectionsMissing[section]++
	statsMu.Unlock()
}

func AddQuestionsMerged(n int) {
	if n <= 0 {
		return
	}
	atomic.AddUint64(&questionsMerged, uint64(n))
}

func IncError(errType, component string) {
	if errType == "" {
		errType = "unknown"
	}
	if component == "" {
		component = "unknown"
	}
	atomic.AddUint64(&errorsTotal, 1)
	statsMu.Lock()
	errorsByType[errType]++
	errorsByComponent[component]++
	statsMu.Unlock()
}

func Snapshot() StatsSnapshot {
	statsMu.Lock()
	quotesCopy := copyMap(quotesBySection)
	missingCopy := copyMap(sectionsMissing)
	errorsTypeCopy := copyMap(errorsByType)
	errorsComponentCopy := copyMap(errorsByComponent)
	statsMu.Unlock()

	return StatsSnapshot{
		QuotesTotal:       atomic.LoadUint64(&quotesTotal),
		QuestionsMerged:   atomic.LoadUint64(&questionsMerged),
		ErrorsTotal:       atomic.LoadUint64(&errorsTotal),
		QuotesBySection:   quotesCopy,
		SectionsMissing:   missingCopy,
		ErrorsByType:      errorsTypeCopy,
		ErrorsByComponent: errorsComponentCopy,
	}
}

// Reset zeroes every counter.
func Reset() {
	atomic.StoreUint64(&quotesTotal, 0)
	atomic.StoreUint64(&questionsMerged, 0)
	atomic.StoreUint64(&errorsTotal, 0)
	statsMu.Lock()
	quotesBySection = map[string]uint64{}
	sectionsMissing = map[string]uint64{}
	errorsByType = map[string]uint64{}
	errorsByComponent = map[string]uint64{}
	statsMu.Unlock()
}

func copyMap(src map[string]uint64) map[string]uint64 {
	if len(src) == 0 {
		return map[string]uint64{}
	}
	out := make(map[string]uint64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
