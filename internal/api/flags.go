package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/CryptoJym/wrath-shield/internal/lexicon"
	"github.com/CryptoJym/wrath-shield/internal/store"
	"github.com/CryptoJym/wrath-shield/internal/suggest"
)

const defaultTopFixLimit = 2

// openFlags handles GET /api/v1/flags/open?owner_uuid=...
func (s *Server) openFlags(w http.ResponseWriter, r *http.Request) {
	ownerUUID, ok := s.requireOwner(w, r)
	if !ok {
		return
	}

	flags, err := s.db.OpenConfidenceFlags(r.Context(), ownerUUID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query flags: "+err.Error())
		return
	}
	if flags == nil {
		flags = []store.ConfidenceFlagRow{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"flags": flags,
		"count": len(flags),
	})
}

// resolveFlag handles POST /api/v1/flags/{id}/resolve.
func (s *Server) resolveFlag(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeError(w, http.StatusServiceUnavailable, "store not configured")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid flag id")
		return
	}

	switch err := s.db.ResolveConfidenceFlag(r.Context(), id); {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "flag not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "resolve flag: "+err.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]string{"status": "resolved"})
	}
}

// topFixes handles GET /api/v1/flags/top-fixes?owner_uuid=...&limit=N.
func (s *Server) topFixes(w http.ResponseWriter, r *http.Request) {
	ownerUUID, ok := s.requireOwner(w, r)
	if !ok {
		return
	}

	limit := defaultTopFixLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	rows, err := s.db.OpenConfidenceFlags(r.Context(), ownerUUID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query flags: "+err.Error())
		return
	}

	flags := make([]suggest.Flag, len(rows))
	for i, row := range rows {
		flags[i] = suggest.Flag{
			ID:           row.ID.String(),
			Phrase:       row.Phrase,
			Category:     lexicon.ParseCategory(row.Category),
			Severity:     row.Severity,
			Position:     row.Position,
			SuggestionID: row.SuggestionID,
		}
	}

	fixes := suggest.TopFixes(flags, limit)
	if fixes == nil {
		fixes = []suggest.Fix{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"fixes": fixes,
		"count": len(fixes),
	})
}

func (s *Server) requireOwner(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	if s.db == nil {
		writeError(w, http.StatusServiceUnavailable, "store not configured")
		return uuid.Nil, false
	}
	ownerUUID, err := uuid.Parse(r.URL.Query().Get("owner_uuid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid owner_uuid")
		return uuid.Nil, false
	}
	return ownerUUID, true
}
