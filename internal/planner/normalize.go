package planner

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/rdave009/CoursePlanner/pkg/model"
)

// Placeholder tokens the registrar scrape emits for "no requirement".
// They are dropped before evaluation and never match the completed set.
var prereqSentinels = map[string]bool{
	"":                  true,
	"NAN":               true,
	"NONE":              true,
	"(NOPREREQUISITES)": true,
}

// ParseMinutes converts a 24-hour HHMM string to minutes past midnight.
// Blank or malformed input yields model.TimeUnknown. Only plain digits are
// accepted; Atoi alone would let a leading sign through.
func ParseMinutes(t string) int {
	t = strings.TrimSpace(t)
	if len(t) < 4 {
		return model.TimeUnknown
	}
	for _, r := range t[:4] {
		if r < '0' || r > '9' {
			return model.TimeUnknown
		}
	}
	hh, _ := strconv.Atoi(t[:2])
	mm, _ := strconv.Atoi(t[2:4])
	if hh > 23 || mm > 59 {
		return model.TimeUnknown
	}
	return hh*60 + mm
}

// MeetingDays converts the per-day boolean flags to day indices (0-4).
func MeetingDays(s *model.Section) []int {
	days := []int{}
	flags := []bool{s.Monday, s.Tuesday, s.Wednesday, s.Thursday, s.Friday}
	for i, set := range flags {
		if set {
			days = append(days, i)
		}
	}
	return days
}

// ParseDayLetters converts a day-letter string such as "MWF" or "TR" to day
// indices. R denotes Thursday.
func ParseDayLetters(letters string) []int {
	days := []int{}
	for _, r := range strings.ToUpper(strings.TrimSpace(letters)) {
		var day int
		switch r {
		case 'M':
			day = 0
		case 'T':
			day = 1
		case 'W':
			day = 2
		case 'R':
			day = 3
		case 'F':
			day = 4
		default:
			continue
		}
		if !containsINT(days, day) {
			days = append(days, day)
		}
	}
	return days
}

// CanonicalCode normalizes a course code: upper-case, no whitespace.
func CanonicalCode(code string) string {
	return strings.ToUpper(strings.Join(strings.Fields(code), ""))
}

// ParsePrereqMatrix parses the textual prerequisite encoding into OR-groups.
// Groups are separated by ';', alternatives inside a group by "OR":
//
//	"CS010C OR CS011; CS111" -> [[CS010C CS011] [CS111]]
//
// Sentinel tokens are dropped, and a group left empty is dropped with them.
func ParsePrereqMatrix(raw string) [][]string {
	matrix := [][]string{}
	for _, groupSTR := range strings.Split(raw, ";") {
		group := []string{}
		for _, code := range strings.Split(strings.ToUpper(groupSTR), " OR ") {
			code = CanonicalCode(code)
			if prereqSentinels[code] {
				continue
			}
			group = append(group, code)
		}
		if len(group) > 0 {
			matrix = append(matrix, group)
		}
	}
	return matrix
}

// Units assumed when the creditHours column is blank or unparsable.
// ParseFloat accepts "nan" and "inf" tokens, which the pipeline emits for
// missing values, so non-finite results degrade to the fallback too.
func parseUnits(raw string, fallback int) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return fallback
	}
	return int(f)
}

// BuildCandidates reduces the raw section pool to the eligible candidate set:
// primary lecture meetings of courses that are wished for and not yet
// completed. Retained records are annotated in place: the returned slice
// holds the caller's own Section pointers with their runtime properties
// assigned, so the raw record of a chosen section is the section itself.
// Excluded records are left untouched. The result is sorted by descending
// wish score; the order is a search heuristic deciding which equal-score plan
// is found first.
func BuildCandidates(sections []*model.Section, scores map[string]float64, completed map[string]bool, cfg *Configuration) []*model.Section {
	candidates := []*model.Section{}
	for _, s := range sections {
		// Skip discussion / lab meetings so they aren't treated as
		// independently schedulable courses
		if !strings.EqualFold(strings.TrimSpace(s.MeetingType), cfg.LectureType) {
			continue
		}
		code := CanonicalCode(s.SubjectCourse)
		score, wished := scores[code]
		if !wished || completed[code] {
			continue
		}
		s.Code = code
		s.Score = score
		s.Units = parseUnits(s.CreditHours, cfg.DefaultUnits)
		s.Days = MeetingDays(s)
		if len(s.Days) == 0 && s.DaysSTR != "" {
			s.Days = ParseDayLetters(s.DaysSTR)
		}
		s.Start = ParseMinutes(s.BeginTimeSTR)
		s.End = ParseMinutes(s.EndTimeSTR)
		s.Prereq = ParsePrereqMatrix(s.PrerequisitesSTR)
		candidates = append(candidates, s)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}
