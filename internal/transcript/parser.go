package transcript

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Speaker distinguishes the account owner from everyone else in a
// recorded conversation. The zero value is SpeakerOther: anything the
// parser cannot positively identify as the owner is treated as the
// other party.
type Speaker int

const (
	SpeakerOther Speaker = iota
	SpeakerSubject
)

func (s Speaker) String() string {
	if s == SpeakerSubject {
		return "subject"
	}
	return "other"
}

// Segment is one parsed conversational turn.
type Segment struct {
	Speaker   Speaker
	Text      string
	Timestamp time.Time
}

// envelope covers both raw lifelog shapes the ingestion pipeline
// persists: contents nested under metadata, or at the root.
type envelope struct {
	Metadata struct {
		Contents json.RawMessage `json:"contents"`
	} `json:"metadata"`
	Contents json.RawMessage `json:"contents"`
}

type rawContent struct {
	Speaker   string          `json:"speaker"`
	Text      string          `json:"text"`
	Timestamp json.RawMessage `json:"timestamp"`
}

// Parse normalizes raw transcript JSON into an ordered segment
// sequence. It never fails: invalid JSON, a missing contents array, or
// an unexpected shape all yield an empty slice, and entries missing
// text or a usable timestamp are dropped. Callers that care about the
// difference log the input themselves; downstream analysis treats
// "no segments" and "unparseable" identically.
func Parse(raw []byte) []Segment {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil
	}

	contents := env.Metadata.Contents
	if len(contents) == 0 {
		contents = env.Contents
	}
	if len(contents) == 0 {
		return nil
	}

	var items []rawContent
	if err := json.Unmarshal(contents, &items); err != nil {
		return nil
	}

	var segments []Segment
	for _, item := range items {
		text := strings.TrimSpace(item.Text)
		if text == "" {
			continue
		}
		ts, ok := parseTimestamp(item.Timestamp)
		if !ok {
			continue
		}
		segments = append(segments, Segment{
			Speaker:   parseSpeaker(item.Speaker),
			Text:      text,
			Timestamp: ts,
		})
	}
	return segments
}

// parseSpeaker maps the literal "user" to the subject; every other
// value, including "assistant" and missing, is the other party.
func parseSpeaker(s string) Speaker {
	if strings.EqualFold(strings.TrimSpace(s), "user") {
		return SpeakerSubject
	}
	return SpeakerOther
}

// parseTimestamp accepts RFC3339 strings (with or without sub-second
// precision) and unix epoch milliseconds.
func parseTimestamp(raw json.RawMessage) (time.Time, bool) {
	if len(raw) == 0 {
		return time.Time{}, false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return time.Time{}, false
		}
		if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return ts, true
		}
		if ts, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
			return ts, true
		}
		return time.Time{}, false
	}

	if ms, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64); err == nil && ms > 0 {
		return time.UnixMilli(ms).UTC(), true
	}
	return time.Time{}, false
}
