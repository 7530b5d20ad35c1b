package confidence

import (
	"regexp"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/CryptoJym/wrath-shield/internal/lexicon"
	"github.com/CryptoJym/wrath-shield/internal/suggest"
)

const (
	// highSeverityThreshold marks the severities that flip
	// HasHighSeverityFlags and trigger the fixed score penalty.
	highSeverityThreshold = 4

	// snippetRadius is how many bytes of context surround a matched
	// phrase in its snippet.
	snippetRadius = 40

	// intensifierWindowWords bounds how far before a matched phrase an
	// intensifier still escalates it.
	intensifierWindowWords = 3

	// Clustering: clusterMinFlags or more flags within
	// clusterWindowWords words of each other all gain +1. Repeated weak
	// hedging reads worse than the sum of its parts.
	clusterWindowWords = 50
	clusterMinFlags    = 3
)

// Flag is one detected confidence-undermining phrase.
type Flag struct {
	Phrase       string           `json:"phrase"`
	Snippet      string           `json:"snippet"`
	Category     lexicon.Category `json:"category"`
	Severity     int              `json:"severity"`
	SuggestionID string           `json:"suggestion_id"`
	Position     int              `json:"position"`
}

// Result is the full analysis of one authored text.
type Result struct {
	Flags                []Flag  `json:"flags"`
	Text                 string  `json:"text"`
	ProcessingTimeMs     int64   `json:"processing_time_ms"`
	FlagCount            int     `json:"flag_count"`
	AverageSeverity      float64 `json:"average_severity"`
	HasHighSeverityFlags bool    `json:"has_high_severity_flags"`
}

// Miner scans authored text for hedging, apologetic, and
// self-undervaluing language. It holds only references to the
// immutable registry, so a single Miner is safe for concurrent use.
type Miner struct {
	lexicons []lexicon.Lexicon
	assured  lexicon.Lexicon
}

// NewMiner builds a miner over the confidence registry.
func NewMiner() *Miner {
	return &Miner{
		lexicons: lexicon.ConfidenceLexicons(),
		assured:  lexicon.AssuredMarkers(),
	}
}

// Analyze scans text against every negative confidence lexicon and
// returns flags in source order with aggregate statistics. Empty input
// yields a well-defined empty result, never an error.
func (m *Miner) Analyze(text string) Result {
	start := time.Now()

	type candidate struct {
		flag Flag
		raw  int // severity before cluster bonus and clamp
	}

	var candidates []candidate
	for _, lex := range m.lexicons {
		for _, p := range lex.Patterns {
			for _, loc := range p.FindAllIndex(text) {
				raw := p.BaseWeight + lexicon.CountTrailingIntensifiers(
					text[:loc[0]], intensifierWindowWords, lex.Intensifiers)
				candidates = append(candidates, candidate{
					flag: Flag{
						Phrase:       text[loc[0]:loc[1]],
						Snippet:      snippet(text, loc[0], loc[1]),
						Category:     p.Category,
						SuggestionID: suggest.SuggestionID(p.Category),
						Position:     loc[0],
					},
					raw: raw,
				})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].flag.Position < candidates[j].flag.Position
	})

	clustered := clusterMembers(text, candidates, func(c candidate) int { return c.flag.Position })

	result := Result{Text: text}
	var severitySum int
	for i, c := range candidates {
		score := c.raw
		if clustered[i] {
			score++
		}
		c.flag.Severity = clampSeverity(score)

		severitySum += c.flag.Severity
		if c.flag.Severity >= highSeverityThreshold {
			result.HasHighSeverityFlags = true
		}
		result.Flags = append(result.Flags, c.flag)
	}

	result.FlagCount = len(result.Flags)
	if result.FlagCount > 0 {
		result.AverageSeverity = float64(severitySum) / float64(result.FlagCount)
	}
	result.ProcessingTimeMs = time.Since(start).Milliseconds()
	return result
}

// QuickScan reports whether any heavyweight pattern matches — a cheap
// pre-filter before a full Analyze.
func (m *Miner) QuickScan(text string) bool {
	for _, lex := range m.lexicons {
		for _, p := range lex.Patterns {
			if p.BaseWeight >= highSeverityThreshold && p.Matches(text) {
				return true
			}
		}
	}
	return false
}

// DetectAssured reports whether the text carries any assured-marker
// language, the one desirable category.
func (m *Miner) DetectAssured(text string) bool {
	for _, p := range m.assured.Patterns {
		if p.Matches(text) {
			return true
		}
	}
	return false
}

var tokenRe = regexp.MustCompile(`\S+`)

// clusterMembers marks every candidate that sits in a group of
// clusterMinFlags or more within clusterWindowWords words. Distance is
// measured in word positions, not bytes, so long words don't shrink
// the window.
func clusterMembers[T any](text string, items []T, position func(T) int) []bool {
	marked := make([]bool, len(items))
	if len(items) < clusterMinFlags {
		return marked
	}

	tokens := tokenRe.FindAllStringIndex(text, -1)
	wordAt := func(pos int) int {
		// Number of tokens starting at or before pos.
		n := sort.Search(len(tokens), func(i int) bool { return tokens[i][0] > pos })
		return n
	}

	wordIdx := make([]int, len(items))
	for i, item := range items {
		wordIdx[i] = wordAt(position(item))
	}

	for i := range items {
		var members []int
		for j := range items {
			if abs(wordIdx[i]-wordIdx[j]) <= clusterWindowWords {
				members = append(members, j)
			}
		}
		if len(members) >= clusterMinFlags {
			for _, j := range members {
				marked[j] = true
			}
		}
	}
	return marked
}

// snippet extracts a context window around a match, stepping to rune
// boundaries and marking truncation with ellipses.
func snippet(text string, start, end int) string {
	s := start - snippetRadius
	if s < 0 {
		s = 0
	}
	e := end + snippetRadius
	if e > len(text) {
		e = len(text)
	}
	for s > 0 && !utf8.RuneStart(text[s]) {
		s--
	}
	for e < len(text) && !utf8.RuneStart(text[e]) {
		e++
	}

	out := text[s:e]
	if s > 0 {
		out = "..." + out
	}
	if e < len(text) {
		out = out + "..."
	}
	return out
}

func clampSeverity(score int) int {
	if score < 1 {
		return 1
	}
	if score > 5 {
		return 5
	}
	return score
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
