package classifier

import (
	"sort"
	"strings"

	"github.com/jonathan/jobshield/internal/features"
	"github.com/jonathan/jobshield/internal/types"
)

// maxSuspiciousLines bounds the number of flagged lines per prediction.
const maxSuspiciousLines = 10

// SuspiciousLines scans the raw text line by line and flags lines where
// keywords from two or more lexicon categories co-occur, ranked by the
// number of distinct matched keywords.
func SuspiciousLines(text string, lexicon features.Lexicon) []types.SuspiciousLine {
	var flagged []types.SuspiciousLine

	for lineNum, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)

		var categories []string
		var keywords []string
		for _, category := range lexicon.Categories() {
			matched := false
			for _, phrase := range lexicon[category] {
				if strings.Contains(lower, phrase) {
					matched = true
					keywords = append(keywords, phrase)
				}
			}
			if matched {
				categories = append(categories, category)
			}
		}

		if len(categories) >= 2 {
			flagged = append(flagged, types.SuspiciousLine{
				LineNumber: lineNum + 1,
				Text:       trimmed,
				Categories: categories,
				Keywords:   keywords,
			})
		}
	}

	sort.SliceStable(flagged, func(i, j int) bool {
		return len(flagged[i].Keywords) > len(flagged[j].Keywords)
	})
	if len(flagged) > maxSuspiciousLines {
		flagged = flagged[:maxSuspiciousLines]
	}
	return flagged
}
