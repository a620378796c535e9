package topics

import (
	"fmt"

	"github.com/TTMK7777/release-creator/internal/domain/model"
)

// Tier bases keep the kinds ordered even before per-finding bonuses:
// streak > dominance > notable gap > close race > lead change > shift > debut.
const (
	streakBase     = 1000.0
	dominanceBase  = 500.0
	gapBase        = 200.0
	closeRaceBase  = 100.0
	leadChangeBase = 80.0
	shiftBase      = 50.0
	debutBase      = 20.0

	streakYearWeight   = 10.0
	currentStreakBonus = 5.0
)

func fromStreak(s model.StreakRecord) model.Topic {
	sig := streakBase + streakYearWeight*float64(s.Length)
	if s.IsCurrent {
		sig += currentStreakBonus
	}

	summary := fmt.Sprintf("%s wins 1st place in %s (%s)",
		s.Company, categoryLabel(s.Category), s.StartYear)
	if s.Length > 1 {
		summary = fmt.Sprintf("%s holds 1st place in %s for %d consecutive years (%s to %s)",
			s.Company, categoryLabel(s.Category), s.Length, s.StartYear, s.EndYear)
	}

	streak := s
	return model.Topic{
		Kind:         model.TopicStreak,
		Category:     s.Category,
		Companies:    []string{s.Company},
		Summary:      summary,
		Significance: sig,
		Streak:       &streak,
	}
}

func fromDominance(d model.DominanceRecord) model.Topic {
	dom := d
	return model.Topic{
		Kind:      model.TopicDominance,
		Category:  d.Category,
		Companies: []string{d.Company},
		Summary: fmt.Sprintf("%s won 1st place in %s in %d of %d measured years",
			d.Company, categoryLabel(d.Category), d.WinCount, d.EligibleYears),
		Significance: dominanceBase + 100*d.Ratio,
		Dominance:    &dom,
	}
}

func fromGap(g model.GapRecord) model.Topic {
	rec := g
	if g.Kind == model.GapClose {
		return model.Topic{
			Kind:      model.TopicCloseRace,
			Category:  g.Category,
			Companies: []string{g.Leader, g.RunnerUp},
			Summary: fmt.Sprintf("only %.1f points separate %s and %s in %s (%s)",
				g.Gap, g.Leader, g.RunnerUp, categoryLabel(g.Category), g.Year),
			// The narrower the margin, the more newsworthy the race.
			Significance: closeRaceBase + (1 - g.Gap),
			Gap:          &rec,
		}
	}
	return model.Topic{
		Kind:      model.TopicGap,
		Category:  g.Category,
		Companies: []string{g.Leader, g.RunnerUp},
		Summary: fmt.Sprintf("%s leads %s by %.1f points over %s (%s)",
			g.Leader, categoryLabel(g.Category), g.Gap, g.RunnerUp, g.Year),
		Significance: gapBase + g.Gap,
		Gap:          &rec,
	}
}

func fromMovement(m model.MovementRecord) model.Topic {
	rec := m
	t := model.Topic{
		Kind:      model.TopicMovement,
		Category:  m.Category,
		Companies: []string{m.Company},
		Movement:  &rec,
	}
	switch m.Kind {
	case model.MovementLeadChange:
		t.Summary = fmt.Sprintf("%s takes 1st place in %s (%s)",
			m.Company, categoryLabel(m.Category), m.ToYear)
		t.Significance = leadChangeBase
	case model.MovementClimb:
		t.Summary = fmt.Sprintf("%s climbs from rank %d to %d in %s (%s to %s)",
			m.Company, m.FromRank, m.ToRank, categoryLabel(m.Category), m.FromYear, m.ToYear)
		t.Significance = shiftBase + float64(m.FromRank-m.ToRank)
	case model.MovementDrop:
		t.Summary = fmt.Sprintf("%s falls from rank %d to %d in %s (%s to %s)",
			m.Company, m.FromRank, m.ToRank, categoryLabel(m.Category), m.FromYear, m.ToYear)
		t.Significance = shiftBase + float64(m.ToRank-m.FromRank)
	}
	return t
}

func fromDebut(d model.DebutRecord) model.Topic {
	rec := d
	sig := debutBase
	if d.Rank < 10 {
		sig += float64(10 - d.Rank)
	}
	return model.Topic{
		Kind:      model.TopicDebut,
		Category:  d.Category,
		Companies: []string{d.Company},
		Summary: fmt.Sprintf("%s enters %s at rank %d (%s)",
			d.Company, categoryLabel(d.Category), d.Rank, d.Year),
		Significance: sig,
		Debut:        &rec,
	}
}

// categoryLabel renders a category for summaries.
func categoryLabel(c model.Category) string {
	switch c.Kind {
	case model.KindOverall:
		return "the overall ranking"
	case model.KindEvaluationItem:
		return fmt.Sprintf("the %q evaluation item", c.Name)
	case model.KindDepartment:
		return fmt.Sprintf("the %q department", c.Name)
	default:
		return c.String()
	}
}
