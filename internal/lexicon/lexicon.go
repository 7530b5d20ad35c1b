package lexicon

import (
	"regexp"
	"strings"
)

// Pattern is a single weighted matcher. Compiled once at package init;
// all matching is case-insensitive.
type Pattern struct {
	re          *regexp.Regexp
	BaseWeight  int
	Category    Category
	Description string
}

func newPattern(expr string, weight int, cat Category, desc string) Pattern {
	return Pattern{
		re:          regexp.MustCompile(`(?i)` + expr),
		BaseWeight:  weight,
		Category:    cat,
		Description: desc,
	}
}

// Matches reports whether the pattern occurs anywhere in text.
func (p Pattern) Matches(text string) bool {
	return p.re.MatchString(text)
}

// FindAllIndex returns the byte ranges of every occurrence in text.
func (p Pattern) FindAllIndex(text string) [][]int {
	return p.re.FindAllStringIndex(text, -1)
}

// Lexicon is one category's pattern list plus its intensifier
// vocabulary. Lexicons are built at init and never mutated; engines
// hold references, not copies.
type Lexicon struct {
	Name         string
	Description  string
	Patterns     []Pattern
	Intensifiers map[string]struct{}
}

// Match is the result of scanning a text against a lexicon set:
// the union of matched categories and the summed base weight.
type Match struct {
	Tags       []Category
	BaseWeight int
}

var wordRe = regexp.MustCompile(`[a-z']+`)

// Words lowercases text and splits it into word tokens.
func Words(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

// MatchAny scans text against every pattern in the given lexicons.
// All matching categories are retained — a single utterance often
// carries several manipulation types at once — and base weights
// accumulate across matches. Returns false when nothing matched,
// which is distinct from a match that scored low.
func MatchAny(lexicons []Lexicon, text string) (Match, bool) {
	var m Match
	seen := make(map[Category]struct{})
	for _, lex := range lexicons {
		for _, p := range lex.Patterns {
			if !p.Matches(text) {
				continue
			}
			if _, dup := seen[p.Category]; !dup {
				seen[p.Category] = struct{}{}
				m.Tags = append(m.Tags, p.Category)
			}
			m.BaseWeight += p.BaseWeight
		}
	}
	if len(m.Tags) == 0 {
		return Match{}, false
	}
	return m, true
}

// CountDistinctIntensifiers counts how many distinct words from the
// vocabulary occur in text. Repetition of one intensifier does not
// stack; five "really"s escalate once.
func CountDistinctIntensifiers(text string, vocab map[string]struct{}) int {
	found := make(map[string]struct{})
	for _, w := range Words(text) {
		if _, ok := vocab[w]; ok {
			found[w] = struct{}{}
		}
	}
	return len(found)
}

// CountTrailingIntensifiers counts vocabulary occurrences in the last
// n words of text. Used by the confidence miner, where only the few
// words immediately before a matched phrase escalate it.
func CountTrailingIntensifiers(text string, n int, vocab map[string]struct{}) int {
	words := Words(text)
	if len(words) > n {
		words = words[len(words)-n:]
	}
	count := 0
	for _, w := range words {
		if _, ok := vocab[w]; ok {
			count++
		}
	}
	return count
}

func set(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
