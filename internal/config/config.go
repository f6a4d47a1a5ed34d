package config

// Extractor holds the inputs and layout heuristics for the wiki extractor.
// The anchor ids and thresholds match the saved FC Barcelona article; other
// pages will likely need different values.
type Extractor struct {
	InputFile string
	SourceURL string

	HonoursID     string
	RecordsID     string
	ContentRootID string
	PlayersID     string

	// RecordsMaxHops bounds the sibling walk after the Records heading.
	RecordsMaxHops  int
	HistoryKeywords []string
}

// Merger names the two question files and the merged output.
type Merger struct {
	FirstFile  string
	SecondFile string
	OutputFile string
	Indent     string
}

func DefaultExtractor() Extractor {
	return Extractor{
		InputFile:       "fc_barcelona_wiki.html",
		SourceURL:       "https://en.wikipedia.org/wiki/FC_Barcelona",
		HonoursID:       "Honours",
		RecordsID:       "Records",
		ContentRootID:   "mw-content-text",
		PlayersID:       "Current_squad",
		RecordsMaxHops:  20,
		HistoryKeywords: []string{"History", "era", "years"},
	}
}

func DefaultMerger() Merger {
	return Merger{
		FirstFile:  "generated_questions_fc_barcelona_part1.json",
		SecondFile: "generated_questions_fc_barcelona_part2.json",
		OutputFile: "generated_questions_fc_barcelona.json",
		Indent:     "  ",
	}
}
