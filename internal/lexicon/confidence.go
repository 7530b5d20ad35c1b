package lexicon

// Confidence lexicons carry category-specific intensifier vocabularies:
// only words in the few positions before a matched phrase escalate it,
// so each category lists the words that actually precede its phrases.
var confidenceLexicons = []Lexicon{
	{
		Name:        "hedge",
		Description: "uncertainty markers that soften a claim into a guess",
		Patterns: []Pattern{
			newPattern(`\bi think\b`, 2, Hedge, "opinion softener"),
			newPattern(`\bmaybe\b`, 2, Hedge, "possibility hedge"),
			newPattern(`\bi guess\b`, 3, Hedge, "reluctant commitment"),
			newPattern(`\bsort of\b`, 2, Hedge, "vagueness hedge"),
			newPattern(`\bkind of\b`, 2, Hedge, "vagueness hedge"),
			newPattern(`i'?m not (entirely |really |quite )?sure`, 3, Hedge, "declared uncertainty"),
			newPattern(`\bno idea\b`, 4, Hedge, "total uncertainty"),
			newPattern(`i could be (totally |completely )?wrong`, 3, Hedge, "preemptive self-refutation"),
			newPattern(`\bit might (just )?be\b`, 2, Hedge, "modal softener"),
			newPattern(`\bprobably\b`, 2, Hedge, "probability hedge"),
		},
		Intensifiers: set("really", "very", "quite", "honestly", "totally"),
	},
	{
		Name:        "apology",
		Description: "unprompted apologies for reasonable asks",
		Patterns: []Pattern{
			newPattern(`sorry to (bother|trouble|disturb) you`, 3, Apology, "apologizes for existing in the channel"),
			newPattern(`\bi apologi[sz]e for\b`, 2, Apology, "formal unprompted apology"),
			newPattern(`\bsorry if this\b`, 3, Apology, "apologizes for a hypothetical offense"),
			newPattern(`forgive me (for|if)`, 3, Apology, "asks absolution for asking"),
			newPattern(`\bsorry\b`, 2, Apology, "bare apology"),
			newPattern(`\bmy apologies\b`, 2, Apology, "formal apology"),
		},
		Intensifiers: set("so", "really", "terribly", "deeply", "very"),
	},
	{
		Name:        "self_deprecation",
		Description: "undervaluing one's own competence or standing",
		Patterns: []Pattern{
			newPattern(`i'?m (just|only) an?\b`, 3, SelfDeprecation, "diminishes own role"),
			newPattern(`i'?m no expert`, 3, SelfDeprecation, "disclaims competence"),
			newPattern(`(probably|might be) a (stupid|dumb|silly) (question|idea)`, 4, SelfDeprecation, "pre-labels own contribution as worthless"),
			newPattern(`i'?m not (very |that )?good at`, 3, SelfDeprecation, "competence disclaimer"),
			newPattern(`someone like me`, 3, SelfDeprecation, "implies a lesser class of person"),
			newPattern(`i don'?t deserve`, 4, SelfDeprecation, "disclaims entitlement"),
			newPattern(`i always mess (it |this |things )?up`, 4, SelfDeprecation, "global self-indictment"),
		},
		Intensifiers: set("just", "only", "really", "totally"),
	},
	{
		Name:        "permission_seeking",
		Description: "asking leave to make a normal request",
		Patterns: []Pattern{
			newPattern(`would it be (okay|ok|alright) if`, 3, PermissionSeeking, "permission preamble"),
			newPattern(`is it (okay|ok|alright) if`, 3, PermissionSeeking, "permission preamble"),
			newPattern(`do you mind if`, 2, PermissionSeeking, "deferential opener"),
			newPattern(`if (that'?s|it'?s) (okay|ok|alright) with you`, 3, PermissionSeeking, "post-hoc permission"),
			newPattern(`i hate to ask`, 3, PermissionSeeking, "apologetic ask framing"),
			newPattern(`\bif i may\b`, 2, PermissionSeeking, "formal deference"),
		},
		Intensifiers: set("possibly", "maybe", "perhaps"),
	},
	{
		Name:        "minimizer",
		Description: "shrinking one's own request before making it",
		Patterns: []Pattern{
			newPattern(`just a (quick|small|tiny|little)`, 2, Minimizer, "pre-shrinks the ask"),
			newPattern(`\breal quick\b`, 2, Minimizer, "time minimizer"),
			newPattern(`\bjust wondering\b`, 2, Minimizer, "downgrades question to idle thought"),
			newPattern(`\bno big deal\b`, 2, Minimizer, "discounts own need"),
			newPattern(`it'?s (probably )?nothing`, 3, Minimizer, "dismisses own concern"),
			newPattern(`only take a (second|minute|moment)`, 2, Minimizer, "time minimizer"),
		},
		Intensifiers: set("just", "really", "very"),
	},
}

// assuredMarkers is the one positive lexicon: language worth keeping.
// Lower weight means a stronger signal here, inverted from the flag
// categories.
var assuredMarkers = Lexicon{
	Name:        "assured",
	Description: "direct, committed phrasing",
	Patterns: []Pattern{
		newPattern(`i'?m (quite |fully )?confident`, 1, Assured, "states confidence outright"),
		newPattern(`i'?m certain`, 1, Assured, "certainty claim"),
		newPattern(`without a doubt`, 1, Assured, "certainty claim"),
		newPattern(`\bi know\b`, 2, Assured, "knowledge claim"),
		newPattern(`\bi will\b`, 2, Assured, "commitment"),
		newPattern(`\bi recommend\b`, 2, Assured, "direct recommendation"),
	},
	Intensifiers: set(),
}

// ConfidenceLexicons returns the negative confidence-flag lexicons.
// The returned slice and its contents must not be mutated.
func ConfidenceLexicons() []Lexicon {
	return confidenceLexicons
}

// AssuredMarkers returns the positive assured-language lexicon.
func AssuredMarkers() Lexicon {
	return assuredMarkers
}
