package transcript

import (
	"testing"
	"time"
)

func TestParseNestedShape(t *testing.T) {
	raw := []byte(`{
		"metadata": {
			"contents": [
				{"speaker": "user", "text": "hello", "timestamp": "2025-06-01T10:00:00Z"},
				{"speaker": "assistant", "text": "hi there", "timestamp": "2025-06-01T10:00:05Z"}
			]
		}
	}`)

	segments := Parse(raw)
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	if segments[0].Speaker != SpeakerSubject {
		t.Errorf("first speaker = %s, want subject", segments[0].Speaker)
	}
	if segments[1].Speaker != SpeakerOther {
		t.Errorf("second speaker = %s, want other", segments[1].Speaker)
	}
	if segments[0].Text != "hello" {
		t.Errorf("first text = %q", segments[0].Text)
	}
	want := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	if !segments[0].Timestamp.Equal(want) {
		t.Errorf("first timestamp = %v, want %v", segments[0].Timestamp, want)
	}
}

func TestParseRootShape(t *testing.T) {
	raw := []byte(`{
		"contents": [
			{"speaker": "other", "text": "you're overreacting", "timestamp": "2025-06-01T10:00:00Z"}
		]
	}`)

	segments := Parse(raw)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if segments[0].Speaker != SpeakerOther {
		t.Errorf("speaker = %s, want other", segments[0].Speaker)
	}
}

func TestParseSpeakerNormalization(t *testing.T) {
	tests := []struct {
		name    string
		speaker string
		want    Speaker
	}{
		{"user is subject", `"user"`, SpeakerSubject},
		{"user case-insensitive", `"User"`, SpeakerSubject},
		{"assistant is other", `"assistant"`, SpeakerOther},
		{"unknown is other", `"unknown"`, SpeakerOther},
		{"empty is other", `""`, SpeakerOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := []byte(`{"contents": [{"speaker": ` + tt.speaker + `, "text": "x", "timestamp": "2025-06-01T10:00:00Z"}]}`)
			segments := Parse(raw)
			if len(segments) != 1 {
				t.Fatalf("got %d segments, want 1", len(segments))
			}
			if segments[0].Speaker != tt.want {
				t.Errorf("speaker = %s, want %s", segments[0].Speaker, tt.want)
			}
		})
	}
}

func TestParseMissingSpeakerField(t *testing.T) {
	raw := []byte(`{"contents": [{"text": "x", "timestamp": "2025-06-01T10:00:00Z"}]}`)
	segments := Parse(raw)
	if len(segments) != 1 || segments[0].Speaker != SpeakerOther {
		t.Fatalf("missing speaker should normalize to other, got %+v", segments)
	}
}

func TestParseDropsIncompleteEntries(t *testing.T) {
	raw := []byte(`{
		"contents": [
			{"speaker": "user", "text": "", "timestamp": "2025-06-01T10:00:00Z"},
			{"speaker": "user", "text": "   ", "timestamp": "2025-06-01T10:00:01Z"},
			{"speaker": "user", "text": "kept", "timestamp": "2025-06-01T10:00:02Z"},
			{"speaker": "user", "text": "no timestamp"},
			{"speaker": "user", "text": "bad timestamp", "timestamp": "not-a-time"}
		]
	}`)

	segments := Parse(raw)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if segments[0].Text != "kept" {
		t.Errorf("kept text = %q", segments[0].Text)
	}
}

func TestParseEpochMillisTimestamp(t *testing.T) {
	raw := []byte(`{"contents": [{"speaker": "user", "text": "x", "timestamp": 1748772000000}]}`)
	segments := Parse(raw)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	want := time.UnixMilli(1748772000000).UTC()
	if !segments[0].Timestamp.Equal(want) {
		t.Errorf("timestamp = %v, want %v", segments[0].Timestamp, want)
	}
}

func TestParseReturnsEmptyNotError(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"invalid json", `{not json`},
		{"empty object", `{}`},
		{"contents not an array", `{"contents": "nope"}`},
		{"metadata contents not an array", `{"metadata": {"contents": 42}}`},
		{"null", `null`},
		{"empty string", ``},
		{"array at root", `[1,2,3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if segments := Parse([]byte(tt.raw)); len(segments) != 0 {
				t.Errorf("Parse(%q) = %d segments, want 0", tt.raw, len(segments))
			}
		})
	}
}

func TestParsePrefersNestedContents(t *testing.T) {
	// When both shapes are present the nested metadata.contents wins;
	// that is where the ingestion pipeline writes the full transcript.
	raw := []byte(`{
		"metadata": {"contents": [{"speaker": "user", "text": "nested", "timestamp": "2025-06-01T10:00:00Z"}]},
		"contents": [{"speaker": "user", "text": "root", "timestamp": "2025-06-01T10:00:00Z"}]
	}`)
	segments := Parse(raw)
	if len(segments) != 1 || segments[0].Text != "nested" {
		t.Fatalf("expected nested contents to win, got %+v", segments)
	}
}
