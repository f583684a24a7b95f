package planner

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration holds every knob for one planning run. The engine keeps no
// process-wide state; callers pass one of these per call.
type Configuration struct {
	SectionsFile string `yaml:"sections_file"`
	ScoresFile   string `yaml:"scores_file"`
	ExportFile   string `yaml:"export_file"`
	MaxLoad      int    `yaml:"max_load"`
	MinUnits     int    `yaml:"min_units"`
	MaxUnits     int    `yaml:"max_units"`
	DefaultUnits int    `yaml:"default_units"`
	LectureType  string `yaml:"lecture_type"`
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		SectionsFile: "./res/ucr_courses_202440.csv",
		ScoresFile:   "./res/wish_scores.json",
		ExportFile:   "plan.csv",
		MaxLoad:      4,
		MinUnits:     0,
		MaxUnits:     21,
		DefaultUnits: 4, // Credit value assumed when the export column is unparsable
		LectureType:  "Lecture",
	}
}

// LoadConfiguration reads a YAML file on top of the defaults.
func LoadConfiguration(path string) (*Configuration, error) {
	cfg := NewDefaultConfiguration()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func containsINT(s []int, e int) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}
	return false
}
