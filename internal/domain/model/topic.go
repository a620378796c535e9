package model

import "time"

// TopicKind enumerates the narrative finding types, ordered here from the
// strongest tier to the weakest.
type TopicKind string

// Topic kinds.
const (
	TopicStreak    TopicKind = "streak"
	TopicDominance TopicKind = "dominance"
	TopicGap       TopicKind = "gap"
	TopicCloseRace TopicKind = "close_race"
	TopicMovement  TopicKind = "rank_shift"
	TopicDebut     TopicKind = "debut"
)

// Topic is a single narrative-worthy finding, ready for a rendering
// collaborator to turn into press-release text. Exactly one of the payload
// pointers is set, matching Kind.
type Topic struct {
	Kind      TopicKind `json:"kind"`
	Category  Category  `json:"category"`
	Companies []string  `json:"companies"`

	// Summary is a short neutral sentence describing the finding.
	// Renderers are free to ignore it and work from the payload.
	Summary string `json:"summary"`

	// Significance orders topics; higher surfaces first.
	Significance float64 `json:"significance_score"`

	Streak    *StreakRecord    `json:"streak,omitempty"`
	Dominance *DominanceRecord `json:"dominance,omitempty"`
	Gap       *GapRecord       `json:"gap,omitempty"`
	Movement  *MovementRecord  `json:"movement,omitempty"`
	Debut     *DebutRecord     `json:"debut,omitempty"`
}

// Warning reports a record that was dropped or adjusted during
// normalization. Surfaced to callers so data-quality issues stay visible.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`

	// Optional context identifying the offending record.
	Year    string `json:"year,omitempty"`
	Company string `json:"company,omitempty"`
}

// Warning codes.
const (
	WarnMalformedYear   = "malformed_year_label"
	WarnInvalidRecord   = "invalid_record"
	WarnDuplicateRecord = "duplicate_record"
	WarnRankOrder       = "rank_score_mismatch"
)

// ReportStats summarizes one analysis run.
type ReportStats struct {
	RecordsIn      int `json:"records_in"`
	RecordsDropped int `json:"records_dropped"`
	Categories     int `json:"categories"`
	Years          int `json:"years"`
	TopicCount     int `json:"topic_count"`
}

// Report is the full output of one analysis run over a record snapshot.
type Report struct {
	RunID       string      `json:"run_id"`
	GeneratedAt time.Time   `json:"generated_at"`
	Topics      []Topic     `json:"topics"`
	Warnings    []Warning   `json:"warnings,omitempty"`
	Stats       ReportStats `json:"stats"`
}
