package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rdave009/CoursePlanner/internal/csvio"
	"github.com/rdave009/CoursePlanner/internal/planner"
)

func main() {
	configPath := flag.String("config", "", "optional YAML configuration file")
	sectionsPath := flag.String("sections", "", "flattened registrar export CSV")
	scoresPath := flag.String("scores", "", "JSON map {course: score} from the ranking service")
	completedList := flag.String("completed", "", "comma-separated completed course codes")
	exportPath := flag.String("out", "", "output CSV path")
	maxLoad := flag.Int("load", 0, "maximum number of sections to select")
	delim := flag.String("delim", ",", "CSV delimiter")
	flag.Parse()

	var cfg *planner.Configuration
	if *configPath != "" {
		var err error
		cfg, err = planner.LoadConfiguration(*configPath)
		if err != nil {
			fmt.Printf("config error: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg = planner.NewDefaultConfiguration()
	}
	if *sectionsPath != "" {
		cfg.SectionsFile = *sectionsPath
	}
	if *scoresPath != "" {
		cfg.ScoresFile = *scoresPath
	}
	if *exportPath != "" {
		cfg.ExportFile = *exportPath
	}
	if *maxLoad > 0 {
		cfg.MaxLoad = *maxLoad
	}

	comma := ','
	if *delim != "" {
		comma = rune((*delim)[0])
	}

	// Parse and instantiate section objects from CSV
	sections, failed, report := csvio.LoadSections(cfg.SectionsFile, comma, nil)
	if failed {
		fmt.Print(report)
		os.Exit(1)
	}

	// Wish scores come from the external ranking service
	scores, failed, report := csvio.LoadScores(cfg.ScoresFile)
	if failed {
		fmt.Print(report)
		os.Exit(1)
	}

	completed := csvio.LoadCompleted(*completedList)

	start := time.Now().UnixNano()
	plan := planner.BuildPlan(sections, scores, completed, cfg)
	end := time.Now().UnixNano()

	if len(plan) == 0 {
		fmt.Println("No feasible schedule.")
		os.Exit(1)
	}

	fmt.Println("Chosen schedule")
	csvio.PrintPlan(plan)
	csvio.PrintWeek(plan)
	fmt.Println()

	valid, msg := planner.Validate(plan, completed, cfg)
	if !valid {
		fmt.Println("Invalid plan:")
	} else {
		fmt.Println("Passed all tests")
	}
	fmt.Println(msg)

	outPath, err := csvio.ExportPlan(plan, cfg.ExportFile)
	if err != nil {
		fmt.Printf("export error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Timer: %f ms\n", float64(end-start)/1000000.0)
	fmt.Println("Exported output to: " + outPath)
}
