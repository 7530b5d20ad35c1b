package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestInitIdempotent(t *testing.T) {
	Init()
	first := AnalysesTotal
	Init()
	if AnalysesTotal != first {
		t.Error("second Init replaced collectors")
	}
}

func TestHandlerServesCollectors(t *testing.T) {
	Init()
	AnalysesTotal.WithLabelValues("manipulation").Inc()
	FlagsTotal.WithLabelValues("gaslighting").Inc()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "wrath_analyses_total") {
		t.Errorf("exposition missing wrath_analyses_total:\n%s", body)
	}
	if !strings.Contains(body, "wrath_flags_total") {
		t.Errorf("exposition missing wrath_flags_total:\n%s", body)
	}
}
