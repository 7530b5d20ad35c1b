package manipulation

import (
	"time"

	"github.com/CryptoJym/wrath-shield/internal/lexicon"
	"github.com/CryptoJym/wrath-shield/internal/transcript"
)

// maxFlagTextLen caps how much of a flagged utterance is retained.
// Flags outlive the transcript they came from, so only a bounded
// excerpt is kept.
const maxFlagTextLen = 200

// Flag is a single detected manipulative utterance.
type Flag struct {
	Timestamp time.Time          `json:"timestamp"`
	Text      string             `json:"text"`
	Tags      []lexicon.Category `json:"tags"`
	Severity  int                `json:"severity"`
	Response  Response           `json:"response"`
}

// Analysis is the per-transcript result.
type Analysis struct {
	ManipulationCount int    `json:"manipulation_count"`
	WrathDeployed     bool   `json:"wrath_deployed"`
	Flags             []Flag `json:"flags"`
}

// Engine scans parsed transcripts for manipulative phrasing. It holds
// only references to the immutable registry plus a window setting, so
// a single Engine is safe for concurrent use.
type Engine struct {
	lexicons []lexicon.Lexicon
	window   time.Duration
}

// NewEngine builds an engine over the manipulation registry. A
// non-positive window falls back to DefaultResponseWindow.
func NewEngine(window time.Duration) *Engine {
	if window <= 0 {
		window = DefaultResponseWindow
	}
	return &Engine{
		lexicons: lexicon.ManipulationLexicons(),
		window:   window,
	}
}

// AnalyzeSegments scans every other-speaker segment for manipulative
// phrasing. Each hit is scored and its response classified against the
// full segment sequence, so replies are found even when they arrive
// several turns later.
func (e *Engine) AnalyzeSegments(segments []transcript.Segment) Analysis {
	var analysis Analysis

	for _, seg := range segments {
		if seg.Speaker != transcript.SpeakerOther {
			continue
		}
		m, ok := lexicon.MatchAny(e.lexicons, seg.Text)
		if !ok {
			continue
		}

		resp := ClassifyResponse(seg.Timestamp, segments, e.window)
		if resp == ResponseWrath {
			analysis.WrathDeployed = true
		}

		analysis.Flags = append(analysis.Flags, Flag{
			Timestamp: seg.Timestamp,
			Text:      truncate(seg.Text, maxFlagTextLen),
			Tags:      m.Tags,
			Severity:  scoreSeverity(seg.Text, m.BaseWeight),
			Response:  resp,
		})
	}

	analysis.ManipulationCount = len(analysis.Flags)
	return analysis
}

// AnalyzeRaw composes the transcript parser with AnalyzeSegments.
// Unparseable input degrades to a zero-flag analysis.
func (e *Engine) AnalyzeRaw(raw []byte) Analysis {
	return e.AnalyzeSegments(transcript.Parse(raw))
}

// scoreSeverity starts from the summed base weight, adds one per
// distinct intensifier anywhere in the utterance, and clamps to [1,5].
func scoreSeverity(text string, baseWeight int) int {
	score := baseWeight + lexicon.CountDistinctIntensifiers(text, lexicon.ManipulationIntensifiers())
	return clampSeverity(score)
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

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
