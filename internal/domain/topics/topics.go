// Package topics merges the analyzers' findings into one ordered list of
// narrative-worthy topics.
package topics

import (
	"sort"
	"strings"

	"github.com/TTMK7777/release-creator/internal/domain/model"
)

// Findings bundles the analyzer outputs feeding one ranking pass.
type Findings struct {
	Streaks    []model.StreakRecord
	Dominances []model.DominanceRecord
	Gaps       []model.GapRecord
	Movements  []model.MovementRecord
	Debuts     []model.DebutRecord
}

// Option applies a configuration option to the ranking pass.
type Option func(*ranker)

// WithMaxTopics caps the number of topics returned. Zero or negative
// means unlimited.
func WithMaxTopics(n int) Option {
	return func(r *ranker) {
		r.maxTopics = n
	}
}

type ranker struct {
	maxTopics int
}

// Rank converts findings into topics, filters streaks below
// minStreakLength, deduplicates, and orders by narrative significance:
// longer streaks first, current streaks before ended ones of equal length,
// dominance above gaps, larger gaps above smaller, with the supplemental
// kinds (close races, lead changes, rank shifts, debuts) tiered below.
// Remaining ties break by category then company for determinism. The
// result is fully materialized; renderers need random access and a count.
func Rank(f Findings, minStreakLength int, opts ...Option) []model.Topic {
	r := &ranker{}
	for _, opt := range opts {
		opt(r)
	}

	var out []model.Topic
	for i := range f.Streaks {
		if f.Streaks[i].Length < minStreakLength {
			continue
		}
		out = append(out, fromStreak(f.Streaks[i]))
	}
	for i := range f.Dominances {
		out = append(out, fromDominance(f.Dominances[i]))
	}
	for i := range f.Gaps {
		out = append(out, fromGap(f.Gaps[i]))
	}
	for i := range f.Movements {
		out = append(out, fromMovement(f.Movements[i]))
	}
	for i := range f.Debuts {
		out = append(out, fromDebut(f.Debuts[i]))
	}

	out = dedupe(out)
	sort.Slice(out, func(i, j int) bool {
		return less(out[i], out[j])
	})

	if r.maxTopics > 0 && len(out) > r.maxTopics {
		out = out[:r.maxTopics]
	}
	return out
}

// less orders topics by significance descending with total tie-breaking.
func less(a, b model.Topic) bool {
	if a.Significance != b.Significance {
		return a.Significance > b.Significance
	}
	if ta, tb := kindTier(a.Kind), kindTier(b.Kind); ta != tb {
		return ta < tb
	}
	if ca, cb := a.Category.String(), b.Category.String(); ca != cb {
		return ca < cb
	}
	if fa, fb := firstCompany(a), firstCompany(b); fa != fb {
		return fa < fb
	}
	return a.Summary < b.Summary
}

// kindTier maps topic kinds to their significance tier, strongest first.
func kindTier(k model.TopicKind) int {
	switch k {
	case model.TopicStreak:
		return 0
	case model.TopicDominance:
		return 1
	case model.TopicGap:
		return 2
	case model.TopicCloseRace:
		return 3
	case model.TopicMovement:
		return 4
	case model.TopicDebut:
		return 5
	default:
		return 6
	}
}

func firstCompany(t model.Topic) string {
	if len(t.Companies) == 0 {
		return ""
	}
	return t.Companies[0]
}

// dedupe drops exact repeats, which can appear when overlapping snapshots
// are analyzed together. A streak and a dominance finding for the same
// company/category pair are distinct facts and both survive.
func dedupe(ts []model.Topic) []model.Topic {
	seen := make(map[string]bool, len(ts))
	out := ts[:0]
	for _, t := range ts {
		key := string(t.Kind) + "|" + t.Category.String() + "|" +
			strings.Join(t.Companies, ",") + "|" + t.Summary
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}
