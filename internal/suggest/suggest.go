package suggest

import (
	"sort"

	"github.com/CryptoJym/wrath-shield/internal/lexicon"
)

// liftPerSeverity converts a flag's severity into an estimated
// confidence-score lift from fixing it. A fixed linear heuristic, not
// a learned value.
const liftPerSeverity = 5

// suggestionIDs maps each confidence category to the rewrite
// suggestion the downstream suggestion engine keys on.
var suggestionIDs = map[lexicon.Category]string{
	lexicon.Hedge:             "drop-hedges",
	lexicon.Apology:           "cut-apologies",
	lexicon.SelfDeprecation:   "reframe-self",
	lexicon.PermissionSeeking: "ask-directly",
	lexicon.Minimizer:         "state-the-cost",
	lexicon.Assured:           "keep-assured",
}

// SuggestionID returns the rewrite-suggestion key for a category.
// Unknown categories get the generic rewrite.
func SuggestionID(cat lexicon.Category) string {
	if id, ok := suggestionIDs[cat]; ok {
		return id
	}
	return "rephrase"
}

// Flag is an open (unresolved) confidence flag as the store hands it
// back for triage.
type Flag struct {
	ID           string           `json:"id"`
	Phrase       string           `json:"phrase"`
	Category     lexicon.Category `json:"category"`
	Severity     int              `json:"severity"`
	Position     int              `json:"position"`
	SuggestionID string           `json:"suggestion_id"`
}

// Fix is a flag picked for immediate attention with its estimated
// payoff.
type Fix struct {
	Flag
	SuggestedLift int `json:"suggested_lift"`
}

// TopFixes ranks open flags by severity descending — ties broken by
// source position, so earlier text wins — and returns the top limit
// with their estimated lift.
func TopFixes(flags []Flag, limit int) []Fix {
	if limit <= 0 || len(flags) == 0 {
		return nil
	}

	ranked := make([]Flag, len(flags))
	copy(ranked, flags)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Severity != ranked[j].Severity {
			return ranked[i].Severity > ranked[j].Severity
		}
		return ranked[i].Position < ranked[j].Position
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	fixes := make([]Fix, len(ranked))
	for i, f := range ranked {
		fixes[i] = Fix{Flag: f, SuggestedLift: f.Severity * liftPerSeverity}
	}
	return fixes
}
