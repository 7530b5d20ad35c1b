package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/CryptoJym/wrath-shield/internal/confidence"
	"github.com/CryptoJym/wrath-shield/internal/lexicon"
	"github.com/CryptoJym/wrath-shield/internal/manipulation"
	"github.com/CryptoJym/wrath-shield/internal/metrics"
)

// maxBodyBytes caps request bodies; lifelogs are capped upstream well
// below this.
const maxBodyBytes = 1 << 20

type draftRequest struct {
	Text      string `json:"text"`
	OwnerUUID string `json:"owner_uuid,omitempty"`
	DraftRef  string `json:"draft_ref,omitempty"`
}

type draftResponse struct {
	Result     confidence.Result                             `json:"result"`
	Score      int                                           `json:"score"`
	Breakdown  map[lexicon.Category]confidence.CategoryStats `json:"breakdown"`
	Assured    bool                                          `json:"assured"`
	AnalysisID string                                        `json:"analysis_id,omitempty"`
}

// analyzeDraft handles POST /api/v1/analyze/draft.
func (s *Server) analyzeDraft(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	start := time.Now()
	result := s.miner.Analyze(req.Text)
	score := confidence.Score(result)
	metrics.AnalysisDuration.WithLabelValues("confidence").Observe(time.Since(start).Seconds())
	metrics.AnalysesTotal.WithLabelValues("confidence").Inc()
	for _, f := range result.Flags {
		metrics.FlagsTotal.WithLabelValues(f.Category.String()).Inc()
	}

	resp := draftResponse{
		Result:    result,
		Score:     score,
		Breakdown: confidence.CategoryBreakdown(result),
		Assured:   s.miner.DetectAssured(req.Text),
	}

	if s.db != nil && req.OwnerUUID != "" {
		ownerUUID, err := uuid.Parse(req.OwnerUUID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid owner_uuid")
			return
		}
		id, err := s.db.SaveDraftAnalysis(r.Context(), ownerUUID, req.DraftRef, result, score)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "persist analysis: "+err.Error())
			return
		}
		resp.AnalysisID = id.String()
	}

	writeJSON(w, http.StatusOK, resp)
}

type lifelogResponse struct {
	Analysis   manipulation.Analysis `json:"analysis"`
	AnalysisID string                `json:"analysis_id,omitempty"`
}

// analyzeLifelog handles POST /api/v1/analyze/lifelog. The body is the
// raw transcript JSON as captured; malformed bodies yield an empty
// analysis, not an error.
func (s *Server) analyzeLifelog(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}

	start := time.Now()
	analysis := s.engine.AnalyzeRaw(raw)
	metrics.AnalysisDuration.WithLabelValues("manipulation").Observe(time.Since(start).Seconds())
	metrics.AnalysesTotal.WithLabelValues("manipulation").Inc()
	for _, f := range analysis.Flags {
		for _, tag := range f.Tags {
			metrics.FlagsTotal.WithLabelValues(tag.String()).Inc()
		}
	}
	if analysis.WrathDeployed {
		metrics.WrathDeployedTotal.Inc()
	}

	resp := lifelogResponse{Analysis: analysis}

	ownerParam := r.URL.Query().Get("owner_uuid")
	if s.db != nil && ownerParam != "" {
		ownerUUID, err := uuid.Parse(ownerParam)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid owner_uuid")
			return
		}
		id, err := s.db.SaveLifelogAnalysis(r.Context(), ownerUUID, r.URL.Query().Get("lifelog_ref"), analysis)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "persist analysis: "+err.Error())
			return
		}
		resp.AnalysisID = id.String()
	}

	writeJSON(w, http.StatusOK, resp)
}
