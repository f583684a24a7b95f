package csvio

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/rdave009/CoursePlanner/internal/planner"
	"github.com/rdave009/CoursePlanner/pkg/model"
)

// LoadSections reads and parses the flattened registrar export for section
// data. Courses in the ignored list are not loaded.
func LoadSections(path string, delim rune, ignored []string) ([]*model.Section, bool, string) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})

	sectionsFile, err := os.Open(path)
	if err != nil {
		return nil, true, "Failed to open " + path + " file. Please make sure the file exists.\n"
	}
	defer sectionsFile.Close()

	_sections := []*model.Section{}
	if err := gocsv.UnmarshalFile(sectionsFile, &_sections); err != nil {
		return nil, true, "Failed to parse data from " + path + " file. Please check the data integrity and format.\n"
	}

	sections := []*model.Section{}
	for _, s := range _sections {
		ignore := false
		for _, ignoredCourse := range ignored {
			if planner.CanonicalCode(s.SubjectCourse) == planner.CanonicalCode(ignoredCourse) {
				ignore = true
				break
			}
		}
		if !ignore {
			sections = append(sections, s)
		}
	}

	return sections, false, ""
}

// LoadScores reads the wish score map produced by the external ranking
// service, a JSON object keyed by course code. Keys are canonicalized so
// lookups match normalized section codes.
func LoadScores(path string) (map[string]float64, bool, string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, true, "Failed to open " + path + " file. Please make sure the file exists.\n"
	}

	raw := map[string]float64{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, true, "Failed to parse data from " + path + " file. Please check the data integrity and format.\n"
	}

	scores := make(map[string]float64, len(raw))
	for code, score := range raw {
		scores[planner.CanonicalCode(code)] = score
	}
	return scores, false, ""
}

// LoadCompleted parses a comma-separated list of completed course codes.
func LoadCompleted(list string) map[string]bool {
	completed := map[string]bool{}
	for _, code := range strings.Split(list, ",") {
		code = planner.CanonicalCode(code)
		if code != "" {
			completed[code] = true
		}
	}
	return completed
}
