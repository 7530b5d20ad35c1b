package backfill

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/CryptoJym/wrath-shield/internal/manipulation"
	"github.com/CryptoJym/wrath-shield/internal/store"
)

// Config holds the backfill command configuration.
type Config struct {
	Dir       string
	OwnerUUID uuid.UUID
	DryRun    bool
	StatePath string
}

// Runner walks a directory of historical lifelog JSON files and runs
// each through the manipulation engine, resumably.
type Runner struct {
	cfg    Config
	store  *store.Store
	engine *manipulation.Engine
	logger *slog.Logger
}

// NewRunner creates a backfill runner.
func NewRunner(cfg Config, s *store.Store, engine *manipulation.Engine, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		store:  s,
		engine: engine,
		logger: logger,
	}
}

// Run executes the backfill process.
func (r *Runner) Run(ctx context.Context) error {
	state, err := LoadState(r.cfg.StatePath)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	files, err := r.discoverFiles()
	if err != nil {
		return fmt.Errorf("discover files: %w", err)
	}

	var pending []string
	for _, path := range files {
		if !state.IsProcessed(path) {
			pending = append(pending, path)
		}
	}
	state.FilesRemaining = len(pending)

	r.logger.Info("files discovered",
		"total", len(files),
		"pending", len(pending),
	)

	var totalFlags, analysesWritten int
	for _, path := range pending {
		select {
		case <-ctx.Done():
			_ = state.Save()
			return ctx.Err()
		default:
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			r.logger.Warn("failed to read lifelog file", "path", path, "error", err)
			state.AddError(fmt.Sprintf("read %s: %v", path, err))
			continue
		}

		analysis := r.engine.AnalyzeRaw(raw)
		lifelogRef := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

		if !r.cfg.DryRun && r.store != nil {
			if _, err := r.store.SaveLifelogAnalysis(ctx, r.cfg.OwnerUUID, lifelogRef, analysis); err != nil {
				r.logger.Error("persistence failed", "path", path, "error", err)
				state.AddError(fmt.Sprintf("persist %s: %v", path, err))
				continue
			}
			analysesWritten++
			state.AnalysesWritten++
		}

		totalFlags += len(analysis.Flags)
		state.FlagsFound += len(analysis.Flags)

		r.logger.Info("lifelog processed",
			"lifelog_ref", lifelogRef,
			"manipulation_count", analysis.ManipulationCount,
			"wrath_deployed", analysis.WrathDeployed,
			"dry_run", r.cfg.DryRun,
		)

		state.MarkProcessed(path)
		state.FilesRemaining--
		_ = state.Save()
	}

	_ = state.Save()

	r.logger.Info("backfill complete",
		"files_processed", len(pending),
		"flags_found", totalFlags,
		"analyses_written", analysesWritten,
		"dry_run", r.cfg.DryRun,
	)

	fmt.Printf("\n=== Backfill Summary ===\n")
	fmt.Printf("Files processed: %d\n", len(pending))
	fmt.Printf("Flags found: %d\n", totalFlags)
	fmt.Printf("Analyses written: %d\n", analysesWritten)
	fmt.Printf("Errors: %d\n", len(state.Errors))
	if r.cfg.DryRun {
		fmt.Printf("Mode: DRY RUN (no DB writes)\n")
	}

	return nil
}

func (r *Runner) discoverFiles() ([]string, error) {
	dir := expandHome(r.cfg.Dir)
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("lifelog dir: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob lifelog files: %w", err)
	}
	sort.Strings(files)
	return files, nil
}
