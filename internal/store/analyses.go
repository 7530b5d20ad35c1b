package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/CryptoJym/wrath-shield/internal/confidence"
	"github.com/CryptoJym/wrath-shield/internal/manipulation"
)

// SaveLifelogAnalysis writes a manipulation analysis and its flags.
// Tables: lifelog_analyses, manipulation_flags.
func (s *Store) SaveLifelogAnalysis(ctx context.Context, ownerUUID uuid.UUID, lifelogRef string, a manipulation.Analysis) (uuid.UUID, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	analysisID := uuid.New()
	_, err = tx.Exec(ctx, `
		INSERT INTO lifelog_analyses (id, owner_uuid, lifelog_ref, manipulation_count, wrath_deployed, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`,
		analysisID, ownerUUID, lifelogRef, a.ManipulationCount, a.WrathDeployed,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert lifelog analysis: %w", err)
	}

	for _, f := range a.Flags {
		tags := make([]string, len(f.Tags))
		for i, tag := range f.Tags {
			tags[i] = tag.String()
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO manipulation_flags (id, analysis_id, owner_uuid, flagged_at, flag_text, tags, severity, response)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.New(), analysisID, ownerUUID, f.Timestamp, f.Text, tags, f.Severity, f.Response.String(),
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert manipulation flag: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("commit: %w", err)
	}
	return analysisID, nil
}

// SaveDraftAnalysis writes a confidence analysis and its flags, all
// initially unresolved. Tables: draft_analyses, confidence_flags.
func (s *Store) SaveDraftAnalysis(ctx context.Context, ownerUUID uuid.UUID, draftRef string, r confidence.Result, score int) (uuid.UUID, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	analysisID := uuid.New()
	_, err = tx.Exec(ctx, `
		INSERT INTO draft_analyses (id, owner_uuid, draft_ref, flag_count, average_severity, confidence_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())`,
		analysisID, ownerUUID, draftRef, r.FlagCount, r.AverageSeverity, score,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert draft analysis: %w", err)
	}

	for _, f := range r.Flags {
		_, err = tx.Exec(ctx, `
			INSERT INTO confidence_flags (id, analysis_id, owner_uuid, phrase, snippet, category, severity, suggestion_id, position, resolved)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, false)`,
			uuid.New(), analysisID, ownerUUID, f.Phrase, f.Snippet, f.Category.String(), f.Severity, f.SuggestionID, f.Position,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert confidence flag: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("commit: %w", err)
	}
	return analysisID, nil
}
