package planner

import (
	"github.com/rdave009/CoursePlanner/pkg/model"
)

// Conflicts reports whether two sections clash on both weekday and time.
// A section with no meeting days or an unknown time never conflicts.
func Conflicts(a *model.Section, b *model.Section) bool {
	if a.Start == model.TimeUnknown || a.End == model.TimeUnknown ||
		b.Start == model.TimeUnknown || b.End == model.TimeUnknown {
		return false
	}
	shared := false
	for _, day := range a.Days {
		if containsINT(b.Days, day) {
			shared = true
			break
		}
	}
	if !shared {
		return false
	}
	// Half-open intervals: back-to-back sections do not clash
	return a.Start < b.End && b.Start < a.End
}

// PrereqMet reports whether every OR-group in the matrix has at least one
// member in the completed set. An empty matrix is always satisfied.
func PrereqMet(matrix [][]string, completed map[string]bool) bool {
	for _, group := range matrix {
		satisfied := false
		for _, code := range group {
			if completed[code] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// BuildPlan picks a conflict-free, prerequisite-valid set of sections with
// maximum total wish score, holding at most MaxLoad sections with total units
// within [MinUnits, MaxUnits]. It returns the chosen raw section records in
// selection order; an empty slice means no feasible non-empty plan exists (or
// the empty plan is itself optimal when MinUnits permits it). The engine
// never errors; all anomalies degrade to exclusion or a sentinel upstream.
func BuildPlan(sections []*model.Section, scores map[string]float64, completed map[string]bool, cfg *Configuration) []*model.Section {
	candidates := BuildCandidates(sections, scores, completed, cfg)

	// Suffix score sums let the search drop branches that cannot beat the
	// recorded best even if every remaining candidate fit
	suffix := make([]float64, len(candidates)+1)
	for i := len(candidates) - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1] + candidates[i].Score
	}

	s := search{
		candidates: candidates,
		suffix:     suffix,
		completed:  completed,
		cfg:        cfg,
		best:       []*model.Section{},
		bestScore:  -1,
	}
	s.explore(0, []*model.Section{}, 0, 0)
	return s.best
}

// search carries the accumulator state of one BuildPlan invocation. Nothing
// here outlives the call, so independent invocations are safe to run
// concurrently.
type search struct {
	candidates []*model.Section
	suffix     []float64
	completed  map[string]bool
	cfg        *Configuration
	best       []*model.Section
	bestScore  float64
}

// explore walks combinations of candidates in increasing index order, so each
// subset is visited exactly once. Every feasible node that strictly improves
// on the recorded best replaces it; equal-score plans found later never do.
func (s *search) explore(idx int, chosen []*model.Section, units int, score float64) {
	if len(chosen) <= s.cfg.MaxLoad && units >= s.cfg.MinUnits && units <= s.cfg.MaxUnits && score > s.bestScore {
		s.best = append([]*model.Section{}, chosen...)
		s.bestScore = score
	}
	if idx == len(s.candidates) || len(chosen) == s.cfg.MaxLoad {
		return
	}
	if score+s.suffix[idx] <= s.bestScore {
		return
	}

	for i := idx; i < len(s.candidates); i++ {
		cand := s.candidates[i]
		// Never choose two sections of the same course
		if hasCode(chosen, cand.Code) {
			continue
		}
		if units+cand.Units > s.cfg.MaxUnits {
			continue
		}
		if !PrereqMet(cand.Prereq, s.completed) {
			continue
		}
		if conflictsAny(cand, chosen) {
			continue
		}
		chosen = append(chosen, cand)
		s.explore(i+1, chosen, units+cand.Units, score+cand.Score)
		chosen = chosen[:len(chosen)-1]
	}
}

func hasCode(chosen []*model.Section, code string) bool {
	for _, s := range chosen {
		if s.Code == code {
			return true
		}
	}
	return false
}

func conflictsAny(cand *model.Section, chosen []*model.Section) bool {
	for _, s := range chosen {
		if Conflicts(cand, s) {
			return true
		}
	}
	return false
}
