package manipulation

import (
	"regexp"
	"time"

	"github.com/CryptoJym/wrath-shield/internal/transcript"
)

// Response classifies how the subject answered a flagged utterance.
// The zero value is silence: no reply inside the window, and a reply
// matching neither list, count the same. Non-committal text is not
// boundary enforcement.
type Response int

const (
	ResponseSilence Response = iota
	ResponseCompliance
	ResponseWrath
)

func (r Response) String() string {
	switch r {
	case ResponseWrath:
		return "wrath"
	case ResponseCompliance:
		return "compliance"
	default:
		return "silence"
	}
}

// ParseResponse maps a stored label back to its Response.
func ParseResponse(s string) Response {
	switch s {
	case "wrath":
		return ResponseWrath
	case "compliance":
		return ResponseCompliance
	default:
		return ResponseSilence
	}
}

// responseRule pairs a matcher with an optional exclusion. RE2 has no
// lookahead, so the bare-"no" rule carries "no problem" as an explicit
// exclusion instead.
type responseRule struct {
	re      *regexp.Regexp
	exclude *regexp.Regexp
}

func rule(expr string) responseRule {
	return responseRule{re: regexp.MustCompile(`(?i)` + expr)}
}

func ruleExcluding(expr, excl string) responseRule {
	return responseRule{
		re:      regexp.MustCompile(`(?i)` + expr),
		exclude: regexp.MustCompile(`(?i)` + excl),
	}
}

func (r responseRule) matches(text string) bool {
	if r.exclude != nil && r.exclude.MatchString(text) {
		return false
	}
	return r.re.MatchString(text)
}

// Wrath rules are checked before compliance rules; the precedence is
// load-bearing. "I'm sorry, but that's not acceptable" carries both an
// apology and a boundary, and it must classify as wrath.
var wrathRules = []responseRule{
	rule(`\b(will not|won'?t|refuse to)\b`),
	rule(`(that'?s|this is) not (acceptable|okay|ok)`),
	rule(`\bstop\b`),
	rule(`i'?m not (okay|ok|comfortable) with (this|that)`),
	rule(`\bthat'?s enough\b`),
	rule(`don'?t (ever )?talk to me like that`),
	ruleExcluding(`\bno\b`, `\bno problem\b`),
}

var complianceRules = []responseRule{
	rule(`\b(okay|fine|sure)\b`),
	rule(`\bsorry\b`),
	rule(`you'?re right`),
	rule(`\bi guess\b`),
	rule(`whatever you (want|say)`),
	rule(`\bif you say so\b`),
}

// DefaultResponseWindow bounds how long after a flagged utterance a
// reply still counts as a response to it.
const DefaultResponseWindow = 5 * time.Minute

// ClassifyResponse finds the first subject-speaker segment strictly
// after flaggedAt and within the window, and classifies it. No such
// segment, or a reply matching neither rule list, is silence.
func ClassifyResponse(flaggedAt time.Time, segments []transcript.Segment, window time.Duration) Response {
	if window <= 0 {
		window = DefaultResponseWindow
	}

	for _, seg := range segments {
		if seg.Speaker != transcript.SpeakerSubject {
			continue
		}
		if !seg.Timestamp.After(flaggedAt) {
			continue
		}
		if seg.Timestamp.Sub(flaggedAt) > window {
			break
		}

		for _, r := range wrathRules {
			if r.matches(seg.Text) {
				return ResponseWrath
			}
		}
		for _, r := range complianceRules {
			if r.matches(seg.Text) {
				return ResponseCompliance
			}
		}
		return ResponseSilence
	}
	return ResponseSilence
}
