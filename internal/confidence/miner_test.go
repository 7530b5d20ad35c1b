package confidence

import (
	"reflect"
	"strings"
	"testing"

	"github.com/CryptoJym/wrath-shield/internal/lexicon"
)

func TestAnalyzeSingleHedge(t *testing.T) {
	m := NewMiner()
	result := m.Analyze("I have no idea what to do here.")

	if result.FlagCount != 1 {
		t.Fatalf("FlagCount = %d, want 1 (flags: %+v)", result.FlagCount, result.Flags)
	}
	f := result.Flags[0]
	if f.Category != lexicon.Hedge {
		t.Errorf("Category = %v, want %v", f.Category, lexicon.Hedge)
	}
	if f.Severity != 4 {
		t.Errorf("Severity = %d, want 4", f.Severity)
	}
	if f.SuggestionID != "drop-hedges" {
		t.Errorf("SuggestionID = %q, want %q", f.SuggestionID, "drop-hedges")
	}
	if !result.HasHighSeverityFlags {
		t.Error("HasHighSeverityFlags = false, want true")
	}
	if result.AverageSeverity != 4 {
		t.Errorf("AverageSeverity = %v, want 4", result.AverageSeverity)
	}
}

func TestAnalyzeIntensifierEscalation(t *testing.T) {
	m := NewMiner()

	plain := m.Analyze("It will probably rain.")
	boosted := m.Analyze("It will really very probably rain.")

	if got := plain.Flags[0].Severity; got != 2 {
		t.Fatalf("plain severity = %d, want 2", got)
	}
	if got := boosted.Flags[0].Severity; got != 4 {
		t.Fatalf("boosted severity = %d, want 4", got)
	}
}

func TestAnalyzeCaseInsensitive(t *testing.T) {
	m := NewMiner()
	for _, text := range []string{"maybe later", "MAYBE later", "MaYbE later"} {
		result := m.Analyze(text)
		if result.FlagCount != 1 {
			t.Errorf("Analyze(%q) FlagCount = %d, want 1", text, result.FlagCount)
			continue
		}
		if result.Flags[0].Severity != 2 {
			t.Errorf("Analyze(%q) severity = %d, want 2", text, result.Flags[0].Severity)
		}
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	m := NewMiner()
	for _, text := range []string{"", "   ", "\n\t  \n"} {
		result := m.Analyze(text)
		if result.FlagCount != 0 || len(result.Flags) != 0 {
			t.Errorf("Analyze(%q) FlagCount = %d, want 0", text, result.FlagCount)
		}
		if result.AverageSeverity != 0 {
			t.Errorf("Analyze(%q) AverageSeverity = %v, want 0", text, result.AverageSeverity)
		}
		if Score(result) != 100 {
			t.Errorf("Score(Analyze(%q)) = %d, want 100", text, Score(result))
		}
	}
}

func TestAnalyzeClusterBonus(t *testing.T) {
	m := NewMiner()

	// Three flags in one short sentence escalate each other.
	clustered := m.Analyze("Sorry, I think maybe this is wrong.")
	if clustered.FlagCount != 3 {
		t.Fatalf("FlagCount = %d, want 3 (flags: %+v)", clustered.FlagCount, clustered.Flags)
	}
	for _, f := range clustered.Flags {
		if f.Severity != 3 {
			t.Errorf("clustered flag %q severity = %d, want 3", f.Phrase, f.Severity)
		}
	}

	// The same phrases spread far apart stay at base weight.
	filler := strings.Repeat("alpha ", 60)
	spread := m.Analyze("maybe " + filler + "maybe " + filler + "maybe")
	if spread.FlagCount != 3 {
		t.Fatalf("spread FlagCount = %d, want 3", spread.FlagCount)
	}
	for _, f := range spread.Flags {
		if f.Severity != 2 {
			t.Errorf("spread flag at %d severity = %d, want 2", f.Position, f.Severity)
		}
	}
}

func TestAnalyzeFlagOrderAndPositions(t *testing.T) {
	m := NewMiner()
	result := m.Analyze("Sorry, I guess we should wait.")

	if result.FlagCount != 2 {
		t.Fatalf("FlagCount = %d, want 2 (flags: %+v)", result.FlagCount, result.Flags)
	}
	if result.Flags[0].Category != lexicon.Apology || result.Flags[1].Category != lexicon.Hedge {
		t.Errorf("categories = %v, %v; want apology then hedge",
			result.Flags[0].Category, result.Flags[1].Category)
	}
	if result.Flags[0].Position >= result.Flags[1].Position {
		t.Errorf("positions %d, %d not ascending",
			result.Flags[0].Position, result.Flags[1].Position)
	}
}

func TestAnalyzeSnippet(t *testing.T) {
	m := NewMiner()

	short := m.Analyze("maybe it works")
	if got := short.Flags[0].Snippet; got != "maybe it works" {
		t.Errorf("short snippet = %q, want whole text", got)
	}

	long := strings.Repeat("x", 60) + " maybe " + strings.Repeat("y", 60)
	result := m.Analyze(long)
	snip := result.Flags[0].Snippet
	if !strings.HasPrefix(snip, "...") || !strings.HasSuffix(snip, "...") {
		t.Errorf("long snippet %q missing ellipsis markers", snip)
	}
	if !strings.Contains(snip, "maybe") {
		t.Errorf("long snippet %q does not contain the match", snip)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	m := NewMiner()
	text := "Sorry to bother you, but I think maybe I'm just a junior here."

	a := m.Analyze(text)
	b := m.Analyze(text)
	a.ProcessingTimeMs, b.ProcessingTimeMs = 0, 0
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated Analyze differs:\n%+v\n%+v", a, b)
	}
}

func TestAnalyzeSeverityBounds(t *testing.T) {
	m := NewMiner()
	texts := []string{
		"I'm so terribly very sorry, sorry, sorry about all of this.",
		"This is probably a stupid question but I have no idea.",
		"Maybe, I guess, sort of, kind of, probably.",
		"Do you mind if I ask? Just a quick thing, no big deal, real quick.",
	}
	for _, text := range texts {
		for _, f := range m.Analyze(text).Flags {
			if f.Severity < 1 || f.Severity > 5 {
				t.Errorf("flag %q in %q has severity %d outside [1,5]", f.Phrase, text, f.Severity)
			}
		}
	}
}

func TestQuickScan(t *testing.T) {
	m := NewMiner()
	tests := []struct {
		text string
		want bool
	}{
		{"I have no idea where to start.", true},
		{"This is probably a stupid question.", true},
		{"maybe maybe maybe", false},
		{"The deploy finished cleanly.", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := m.QuickScan(tt.text); got != tt.want {
			t.Errorf("QuickScan(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestDetectAssured(t *testing.T) {
	m := NewMiner()
	tests := []struct {
		text string
		want bool
	}{
		{"I'm confident we can ship this.", true},
		{"I will handle the rollout.", true},
		{"I recommend the second option.", true},
		{"Maybe later, I guess.", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := m.DetectAssured(tt.text); got != tt.want {
			t.Errorf("DetectAssured(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
