package model

// StreakRecord is one maximal run of adjacent winning years for a company
// within a category. Runs of length 1 are emitted by the detector and
// filtered later by significance, not here. Never mutated after creation.
type StreakRecord struct {
	Category  Category `json:"category"`
	Company   string   `json:"company"`
	StartYear string   `json:"start_year"`
	EndYear   string   `json:"end_year"`

	// Length is the number of consecutive years in the run.
	Length int `json:"consecutive_length"`

	// Years lists the year labels in the run, chronologically ascending.
	Years []string `json:"years"`

	// IsCurrent is true when EndYear is the latest year observed for
	// the category.
	IsCurrent bool `json:"is_current"`
}

// DominanceRecord reports a company's win ratio across all measured years
// of a category. The denominator counts years the category has data, not
// years the company was present.
type DominanceRecord struct {
	Category      Category `json:"category"`
	Company       string   `json:"company"`
	WinCount      int      `json:"win_count"`
	EligibleYears int      `json:"eligible_year_count"`
	Ratio         float64  `json:"ratio"`
}

// GapKind distinguishes the two score-difference findings.
type GapKind string

// Gap finding kinds.
const (
	// GapNotable marks an unusually large lead over the runner-up.
	GapNotable GapKind = "notable"
	// GapClose marks a near-tie between first and second place.
	GapClose GapKind = "close"
)

// GapRecord compares the rank-1 and rank-2 scores in one (category, year)
// scope. Gap is always >= 0. No record is produced for tied first places
// or scopes without a runner-up.
type GapRecord struct {
	Category      Category `json:"category"`
	Year          string   `json:"year"`
	Kind          GapKind  `json:"kind"`
	Leader        string   `json:"leader_company"`
	RunnerUp      string   `json:"runner_up_company"`
	LeaderScore   float64  `json:"leader_score"`
	RunnerUpScore float64  `json:"runner_up_score"`
	Gap           float64  `json:"gap"`
}

// MovementKind distinguishes rank-movement findings.
type MovementKind string

// Movement finding kinds.
const (
	// MovementClimb marks a company moving up by the shift threshold or more.
	MovementClimb MovementKind = "climb"
	// MovementDrop marks a company falling by the shift threshold or more.
	MovementDrop MovementKind = "drop"
	// MovementLeadChange marks a company taking first place from the
	// previous year's winner(s).
	MovementLeadChange MovementKind = "lead_change"
)

// MovementRecord compares a company's rank across the two most recent
// years of a category.
type MovementRecord struct {
	Category Category     `json:"category"`
	Company  string       `json:"company"`
	Kind     MovementKind `json:"kind"`
	FromYear string       `json:"from_year"`
	ToYear   string       `json:"to_year"`

	// FromRank is 0 when the company was absent in FromYear.
	FromRank int `json:"from_rank,omitempty"`
	ToRank   int `json:"to_rank"`
}

// DebutRecord reports a company appearing in a category for the first time
// in its latest measured year.
type DebutRecord struct {
	Category Category `json:"category"`
	Company  string   `json:"company"`
	Year     string   `json:"year"`
	Rank     int      `json:"rank"`
	Score    float64  `json:"score"`
}
