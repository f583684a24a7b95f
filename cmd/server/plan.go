package main

import (
	"github.com/rdave009/CoursePlanner/internal/csvio"
	"github.com/rdave009/CoursePlanner/internal/planner"
)

func createAndExportPlan(sectionsPath string, scoresPath string, completedList string, exportFile string) (string, bool, string) {
	cfg := planner.NewDefaultConfiguration()

	sections, failed, report := csvio.LoadSections(sectionsPath, ',', nil)
	if failed {
		return "", true, report
	}
	scores, failed, report := csvio.LoadScores(scoresPath)
	if failed {
		return "", true, report
	}
	completed := csvio.LoadCompleted(completedList)

	plan := planner.BuildPlan(sections, scores, completed, cfg)

	if _, err := csvio.ExportPlan(plan, exportFile); err != nil {
		return "", true, "Failed to write " + exportFile + "\n"
	}

	planCSV, err := csvio.ExportPlanString(plan)
	if err != nil {
		return "", true, "Failed to format plan\n"
	}
	return planCSV, false, ""
}
