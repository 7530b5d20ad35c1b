package processor

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/CryptoJym/wrath-shield/internal/bus"
	"github.com/CryptoJym/wrath-shield/internal/manipulation"
	"github.com/CryptoJym/wrath-shield/internal/metrics"
	"github.com/CryptoJym/wrath-shield/internal/store"
	"github.com/CryptoJym/wrath-shield/internal/transcript"
)

// Processor orchestrates the lifelog analysis pipeline: stored event in,
// parsed transcript through the manipulation engine, analysis persisted,
// analyzed event out. Every failure is logged and swallowed so one bad
// event never takes down the subscriber.
type Processor struct {
	store  *store.Store
	engine *manipulation.Engine
	bus    *bus.Client
	logger *slog.Logger
}

func New(s *store.Store, engine *manipulation.Engine, b *bus.Client, logger *slog.Logger) *Processor {
	metrics.Init()
	return &Processor{
		store:  s,
		engine: engine,
		bus:    b,
		logger: logger,
	}
}

// HandleLifelogStored is the NATS handler for wrath.lifelog.stored.
func (p *Processor) HandleLifelogStored(subject string, data []byte) {
	ctx := context.Background()

	var evt bus.LifelogStoredEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		p.logger.Error("failed to parse lifelog event", "error", err)
		return
	}

	ownerUUID, err := uuid.Parse(evt.OwnerUUID)
	if err != nil {
		p.logger.Error("invalid owner uuid", "owner_uuid", evt.OwnerUUID, "error", err)
		return
	}

	p.logger.Info("processing lifelog",
		"lifelog_ref", evt.LifelogRef,
		"owner", evt.OwnerUUID,
	)

	start := time.Now()
	segments := transcript.Parse(evt.RawJSON)
	analysis := p.engine.AnalyzeSegments(segments)
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

	var analysisID uuid.UUID
	if p.store != nil {
		analysisID, err = p.store.SaveLifelogAnalysis(ctx, ownerUUID, evt.LifelogRef, analysis)
		if err != nil {
			p.logger.Error("persistence failed", "lifelog_ref", evt.LifelogRef, "error", err)
			return
		}
	}

	if p.bus != nil {
		err := p.bus.Publish(bus.SubjectLifelogAnalyzed, bus.LifelogAnalyzedEvent{
			LifelogRef:        evt.LifelogRef,
			AnalysisID:        analysisID.String(),
			ManipulationCount: analysis.ManipulationCount,
			WrathDeployed:     analysis.WrathDeployed,
			FlagCount:         len(analysis.Flags),
		})
		if err != nil {
			p.logger.Error("failed to publish analyzed event", "lifelog_ref", evt.LifelogRef, "error", err)
		}
	}

	p.logger.Info("lifelog processed",
		"lifelog_ref", evt.LifelogRef,
		"manipulation_count", analysis.ManipulationCount,
		"wrath_deployed", analysis.WrathDeployed,
	)
}
