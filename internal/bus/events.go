package bus

import "encoding/json"

// Subjects the shield speaks on.
const (
	// SubjectLifelogStored is published by the capture pipeline when a
	// raw transcript lands in storage.
	SubjectLifelogStored = "wrath.lifelog.stored"

	// SubjectLifelogAnalyzed is published after a transcript has been
	// run through the manipulation engine.
	SubjectLifelogAnalyzed = "wrath.lifelog.analyzed"

	// SubjectServiceRegistered announces the service on startup.
	SubjectServiceRegistered = "wrath.service.registered"
)

// LifelogStoredEvent is consumed from SubjectLifelogStored. RawJSON
// carries the transcript body as captured, unparsed.
type LifelogStoredEvent struct {
	LifelogRef string          `json:"lifelog_ref"`
	OwnerUUID  string          `json:"owner_uuid"`
	RawJSON    json.RawMessage `json:"raw_json"`
}

// LifelogAnalyzedEvent is published on SubjectLifelogAnalyzed once a
// transcript's analysis is persisted.
type LifelogAnalyzedEvent struct {
	LifelogRef        string `json:"lifelog_ref"`
	AnalysisID        string `json:"analysis_id"`
	ManipulationCount int    `json:"manipulation_count"`
	WrathDeployed     bool   `json:"wrath_deployed"`
	FlagCount         int    `json:"flag_count"`
}

// ServiceRegisteredEvent announces this instance to the rest of the
// swarm.
type ServiceRegisteredEvent struct {
	Service string `json:"service"`
	Port    int    `json:"port"`
}
