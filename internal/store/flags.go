package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type ConfidenceFlagRow struct {
	ID           uuid.UUID
	AnalysisID   uuid.UUID
	OwnerUUID    uuid.UUID
	Phrase       string
	Snippet      string
	Category     string
	Severity     int
	SuggestionID string
	Position     int
	Resolved     bool
}

// OpenConfidenceFlags fetches an owner's unresolved confidence flags,
// worst first.
func (s *Store) OpenConfidenceFlags(ctx context.Context, ownerUUID uuid.UUID) ([]ConfidenceFlagRow, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, analysis_id, owner_uuid, phrase, snippet, category, severity, suggestion_id, position, resolved
		FROM confidence_flags
		WHERE owner_uuid = $1 AND resolved = false
		ORDER BY severity DESC, position ASC`,
		ownerUUID,
	)
	if err != nil {
		return nil, fmt.Errorf("query open flags: %w", err)
	}
	defer rows.Close()

	var flags []ConfidenceFlagRow
	for rows.Next() {
		var f ConfidenceFlagRow
		err := rows.Scan(&f.ID, &f.AnalysisID, &f.OwnerUUID, &f.Phrase, &f.Snippet, &f.Category, &f.Severity, &f.SuggestionID, &f.Position, &f.Resolved)
		if err != nil {
			return nil, fmt.Errorf("scan flag: %w", err)
		}
		flags = append(flags, f)
	}
	return flags, rows.Err()
}

// ResolveConfidenceFlag marks a flag resolved. Returns ErrNotFound for
// an unknown ID.
func (s *Store) ResolveConfidenceFlag(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE confidence_flags SET resolved = true, resolved_at = now()
		WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("resolve flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
