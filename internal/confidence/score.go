package confidence

import (
	"math"

	"github.com/CryptoJym/wrath-shield/internal/lexicon"
)

// Score penalty tuning. The score is a 0-100 triage number, not a
// calibrated probability: average severity dominates, flag density
// catches texts that hedge constantly but mildly, and any single
// high-severity flag costs a fixed chunk on top.
const (
	severityPenaltyWeight = 12.0
	densityPenaltyWeight  = 0.5
	highSeverityPenalty   = 15
)

// CategoryStats summarizes one category's share of a result.
type CategoryStats struct {
	Count           int     `json:"count"`
	AverageSeverity float64 `json:"average_severity"`
}

// Score derives a 0-100 confidence score from a result. Text with zero
// flags always scores exactly 100.
func Score(result Result) int {
	if result.FlagCount == 0 {
		return 100
	}

	score := 100.0
	score -= result.AverageSeverity * severityPenaltyWeight
	score -= flagDensity(result) * densityPenaltyWeight
	if result.HasHighSeverityFlags {
		score -= highSeverityPenalty
	}

	n := int(math.Round(score))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// flagDensity is flags per 100 words of analyzed text.
func flagDensity(result Result) float64 {
	words := len(tokenRe.FindAllString(result.Text, -1))
	if words == 0 {
		return 0
	}
	return float64(result.FlagCount) / float64(words) * 100
}

// CategoryBreakdown groups a result's flags by category. Empty map
// when no flags exist.
func CategoryBreakdown(result Result) map[lexicon.Category]CategoryStats {
	breakdown := make(map[lexicon.Category]CategoryStats)
	sums := make(map[lexicon.Category]int)
	for _, f := range result.Flags {
		stats := breakdown[f.Category]
		stats.Count++
		breakdown[f.Category] = stats
		sums[f.Category] += f.Severity
	}
	for cat, stats := range breakdown {
		stats.AverageSeverity = float64(sums[cat]) / float64(stats.Count)
		breakdown[cat] = stats
	}
	return breakdown
}
