package planner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rdave009/CoursePlanner/pkg/model"
)

func TestParseMinutes(t *testing.T) {
	require.Equal(t, 810, ParseMinutes("1330"))
	require.Equal(t, 0, ParseMinutes("0000"))
	require.Equal(t, 23*60+59, ParseMinutes("2359"))
	require.Equal(t, 9*60, ParseMinutes(" 0900 "))

	require.Equal(t, model.TimeUnknown, ParseMinutes(""))
	require.Equal(t, model.TimeUnknown, ParseMinutes("930"))
	require.Equal(t, model.TimeUnknown, ParseMinutes("2500"))
	require.Equal(t, model.TimeUnknown, ParseMinutes("09:0"))
	require.Equal(t, model.TimeUnknown, ParseMinutes("TBA"))
	// A leading sign is not a digit
	require.Equal(t, model.TimeUnknown, ParseMinutes("+930"))
	require.Equal(t, model.TimeUnknown, ParseMinutes("-930"))
}

func TestMeetingDays(t *testing.T) {
	s := &model.Section{Monday: true, Wednesday: true, Friday: true}
	require.Equal(t, []int{0, 2, 4}, MeetingDays(s))

	require.Empty(t, MeetingDays(&model.Section{}))
}

func TestParseDayLetters(t *testing.T) {
	require.Equal(t, []int{0, 2, 4}, ParseDayLetters("MWF"))
	require.Equal(t, []int{1, 3}, ParseDayLetters("TR"))
	require.Equal(t, []int{0}, ParseDayLetters("MM"))
	require.Empty(t, ParseDayLetters(""))
	require.Empty(t, ParseDayLetters("SU"))
}

func TestParsePrereqMatrix(t *testing.T) {
	require.Equal(t, [][]string{{"CS010C", "CS011"}, {"CS111"}},
		ParsePrereqMatrix("CS010C OR CS011; CS111"))

	// Sentinels never satisfy a group and disappear before evaluation
	require.Equal(t, [][]string{{"CS111"}},
		ParsePrereqMatrix("nan; CS111 OR nan"))
	require.Empty(t, ParsePrereqMatrix("(no prerequisites)"))
	require.Empty(t, ParsePrereqMatrix(""))
}

func TestPrereqMetSentinelNeverSatisfies(t *testing.T) {
	completed := map[string]bool{"NAN": true}
	matrix := ParsePrereqMatrix("CS010C OR nan")
	require.False(t, PrereqMet(matrix, completed))
}

func TestParseUnitsFallback(t *testing.T) {
	require.Equal(t, 4, parseUnits("4.0", 4))
	require.Equal(t, 5, parseUnits("5", 4))
	require.Equal(t, 4, parseUnits("", 4))
	require.Equal(t, 4, parseUnits("None", 4))
	require.Equal(t, 4, parseUnits("-1", 4))
	// ParseFloat parses these tokens as non-finite values
	require.Equal(t, 4, parseUnits("nan", 4))
	require.Equal(t, 4, parseUnits("NaN", 4))
	require.Equal(t, 4, parseUnits("inf", 4))
	require.Equal(t, 4, parseUnits("-inf", 4))
}

func TestPlanNanUnitsSelectableViaFallback(t *testing.T) {
	s := lecture("CS141", "MWF", "0900", "1000", "nan", "")
	scores := map[string]float64{"CS141": 8}

	plan := BuildPlan([]*model.Section{s}, scores, map[string]bool{}, testCfg(4, 0, 21))

	require.Len(t, plan, 1)
	require.Equal(t, 4, plan[0].Units)
}

func TestBuildCandidatesFiltersAndSorts(t *testing.T) {
	discussion := lecture("CS141", "T", "1100", "1200", "0", "")
	discussion.MeetingType = "Discussion"

	sections := []*model.Section{
		lecture("CS141", "MWF", "0900", "1000", "4", ""),
		discussion,
		lecture("cs 150", "TR", "1000", "1100", "4", ""), // code needs canonicalizing
		lecture("CS161", "TR", "1400", "1500", "4", ""),  // no wish score
		lecture("CS010C", "MWF", "1100", "1200", "4", ""), // already completed
	}
	scores := map[string]float64{"CS141": 5, "CS150": 8, "CS010C": 9}
	completed := map[string]bool{"CS010C": true}

	candidates := BuildCandidates(sections, scores, completed, NewDefaultConfiguration())

	require.Equal(t, []string{"CS150", "CS141"}, codes(candidates))
	require.Equal(t, 8.0, candidates[0].Score)
	require.Equal(t, []int{1, 3}, candidates[0].Days)
	require.Equal(t, 600, candidates[0].Start)
	require.Equal(t, 660, candidates[0].End)
}

func TestBuildCandidatesAnnotatesInPlace(t *testing.T) {
	kept := lecture("CS141", "MWF", "0900", "1000", "4", "")
	excluded := lecture("CS161", "TR", "1400", "1500", "4", "")
	scores := map[string]float64{"CS141": 5}

	candidates := BuildCandidates([]*model.Section{kept, excluded}, scores, map[string]bool{}, NewDefaultConfiguration())

	// Candidates are the caller's own records, annotated
	require.Len(t, candidates, 1)
	require.Same(t, kept, candidates[0])
	require.Equal(t, "CS141", kept.Code)
	// Excluded records keep their zero-value runtime fields
	require.Empty(t, excluded.Code)
	require.Zero(t, excluded.Score)
}

func TestBuildCandidatesDayLetterFallback(t *testing.T) {
	s := lecture("CS141", "", "0900", "1000", "4", "")
	s.DaysSTR = "MWF"
	scores := map[string]float64{"CS141": 5}

	candidates := BuildCandidates([]*model.Section{s}, scores, map[string]bool{}, NewDefaultConfiguration())

	require.Len(t, candidates, 1)
	require.Equal(t, []int{0, 2, 4}, candidates[0].Days)
}

func TestBuildCandidatesMalformedTimeBecomesUnscheduled(t *testing.T) {
	s := lecture("CS141", "MWF", "9am", "10am", "4", "")
	scores := map[string]float64{"CS141": 5}

	candidates := BuildCandidates([]*model.Section{s}, scores, map[string]bool{}, NewDefaultConfiguration())

	require.Len(t, candidates, 1)
	require.Equal(t, model.TimeUnknown, candidates[0].Start)
	require.Equal(t, model.TimeUnknown, candidates[0].End)
	require.False(t, Conflicts(candidates[0], candidates[0]))
}

func TestConflicts(t *testing.T) {
	a := lecture("CS141", "MWF", "0900", "1000", "4", "")
	b := lecture("CS150", "MWF", "0930", "1030", "4", "")
	c := lecture("CS161", "TR", "0900", "1000", "4", "")
	scores := map[string]float64{"CS141": 3, "CS150": 2, "CS161": 1}
	sections := BuildCandidates([]*model.Section{a, b, c}, scores, map[string]bool{}, NewDefaultConfiguration())
	require.Len(t, sections, 3)

	require.True(t, Conflicts(a, b))
	require.True(t, Conflicts(b, a))
	require.False(t, Conflicts(a, c)) // disjoint days
	require.False(t, Conflicts(b, c))
}
