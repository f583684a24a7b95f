package planner

import (
	"fmt"

	"github.com/rdave009/CoursePlanner/pkg/model"
)

// Validate re-checks a returned plan against every invariant the engine must
// preserve. Returns false and a message for invalid plans.
func Validate(plan []*model.Section, completed map[string]bool, cfg *Configuration) (bool, string) {
	var message string
	var valid bool = true
	var hasDuplicate bool = false
	var hasClash bool = false
	var hasUnmetPrereq bool = false

	if len(plan) > cfg.MaxLoad {
		valid = false
		message += fmt.Sprintf("- Plan holds %d sections, load limit is %d\n", len(plan), cfg.MaxLoad)
	}
	withinLoad := len(plan) <= cfg.MaxLoad

	totalUnits := 0
	for _, s := range plan {
		totalUnits += s.Units
	}
	unitsOK := len(plan) == 0 || (totalUnits >= cfg.MinUnits && totalUnits <= cfg.MaxUnits)
	if !unitsOK {
		valid = false
		message += fmt.Sprintf("- Total units %d outside [%d, %d]\n", totalUnits, cfg.MinUnits, cfg.MaxUnits)
	}

	seen := map[string]bool{}
	for _, s := range plan {
		if seen[s.Code] {
			valid = false
			hasDuplicate = true
			message += "- Course " + s.Code + " selected more than once\n"
		}
		seen[s.Code] = true
	}

	for i, a := range plan {
		for _, b := range plan[i+1:] {
			if Conflicts(a, b) {
				valid = false
				hasClash = true
				message += "- Sections " + a.Code + " and " + b.Code + " meet at the same time\n"
			}
		}
	}

	for _, s := range plan {
		if !PrereqMet(s.Prereq, completed) {
			valid = false
			hasUnmetPrereq = true
			message += "- Prerequisites of " + s.Code + " are not fulfilled\n"
		}
	}

	if hasUnmetPrereq {
		message = "[FAIL]: Prerequisite check.\n" + message
	} else {
		message = "[  OK]: Prerequisite check.\n" + message
	}
	if hasClash {
		message = "[FAIL]: Time clash check.\n" + message
	} else {
		message = "[  OK]: Time clash check.\n" + message
	}
	if hasDuplicate {
		message = "[FAIL]: Duplicate course check.\n" + message
	} else {
		message = "[  OK]: Duplicate course check.\n" + message
	}
	if !unitsOK {
		message = "[FAIL]: Unit bound check.\n" + message
	} else {
		message = "[  OK]: Unit bound check.\n" + message
	}
	if !withinLoad {
		message = "[FAIL]: Load limit check.\n" + message
	} else {
		message = "[  OK]: Load limit check.\n" + message
	}

	return valid, message
}
