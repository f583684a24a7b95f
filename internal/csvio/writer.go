package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/rdave009/CoursePlanner/pkg/model"
)

var dayLetters = []string{"M", "T", "W", "R", "F"}
var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// ExportPlan formats the chosen sections into PlanCSVRow structs and writes
// them to the CSV file specified by the given path.
func ExportPlan(plan []*model.Section, path string) (string, error) {
	rows := formatPlan(plan)

	// Remove file if exists
	_, err := os.Stat(path)
	if err == nil {
		os.Remove(path)
	}

	out, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, os.ModePerm)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return "", err
	}
	return path, nil
}

// ExportPlanString formats the chosen sections into PlanCSVRow structs and
// returns them as a CSV string.
func ExportPlanString(plan []*model.Section) (string, error) {
	rows := formatPlan(plan)
	return gocsv.MarshalString(&rows)
}

// PrintPlan prints the chosen schedule in selection order, one line per
// section, with a score and unit total at the bottom.
func PrintPlan(plan []*model.Section) {
	totalUnits := 0
	totalScore := 0.0
	for _, s := range plan {
		fmt.Printf("%-8s %-40.40s %-5s %s-%s %d units\n",
			s.Code, s.CourseTitle, daysOrTBA(s), clock(s.Start), clock(s.End), s.Units)
		totalUnits += s.Units
		totalScore += s.Score
	}
	fmt.Printf("Total: %d section(s), %d units, score %.2f\n", len(plan), totalUnits, totalScore)
}

// PrintWeek prints the chosen schedule as a weekly grid grouped by day.
// Sections without a fixed day are listed under TBA.
func PrintWeek(plan []*model.Section) {
	for day := range dayNames {
		printed := false
		for _, s := range plan {
			for _, d := range s.Days {
				if d == day {
					if !printed {
						fmt.Printf("\n%s\n", dayNames[day])
						printed = true
					}
					fmt.Printf("  %s-%s %-8s %s\n", clock(s.Start), clock(s.End), s.Code, s.CourseTitle)
					break
				}
			}
		}
	}
	printed := false
	for _, s := range plan {
		if len(s.Days) == 0 {
			if !printed {
				fmt.Printf("\nTBA\n")
				printed = true
			}
			fmt.Printf("  %-8s %s\n", s.Code, s.CourseTitle)
		}
	}
}

func formatPlan(plan []*model.Section) []*model.PlanCSVRow {
	var formatted []*model.PlanCSVRow
	for _, s := range plan {
		formatted = append(formatted, &model.PlanCSVRow{
			CourseCode: s.Code,
			CourseName: s.CourseTitle,
			CRN:        s.CRN,
			Days:       daysOrTBA(s),
			BeginTime:  clock(s.Start),
			EndTime:    clock(s.End),
			Units:      s.Units,
			Score:      s.Score,
			Instructor: s.FacultyName,
		})
	}
	return formatted
}

func daysOrTBA(s *model.Section) string {
	if len(s.Days) == 0 {
		return "TBA"
	}
	letters := ""
	for _, d := range s.Days {
		if d >= 0 && d < len(dayLetters) {
			letters += dayLetters[d]
		}
	}
	return letters
}

func clock(minutes int) string {
	if minutes == model.TimeUnknown {
		return "----"
	}
	return fmt.Sprintf("%02d%02d", minutes/60, minutes%60)
}
