// Package gpa implements the district's weighted GPA formula. The
// numbers here are compared by users against their official grade
// report, so the rounding and precedence rules must not drift.
package gpa

import (
	"math"
	"strings"
)

const (
	ScaleStandard = 5.0
	ScaleAdvanced = 5.5
	ScaleAPIB     = 6.0
)

// Scale classifies a course by rigor level from its display name.
// AP/IB take precedence over Advanced: a name containing both "AP"
// and "Adv" is an AP course. "Computer Sci 3 Adv" is the one course
// the district weights on the AP/IB scale despite its name.
func Scale(courseName string) float64 {
	if strings.Contains(courseName, "AP") ||
		strings.Contains(courseName, "IB") ||
		strings.Contains(courseName, "Computer Sci 3 Adv") {
		return ScaleAPIB
	}
	if strings.Contains(courseName, "Adv") {
		return ScaleAdvanced
	}
	return ScaleStandard
}

type Result struct {
	Weighted float64 `json:"weightedGpa"`
	Max      float64 `json:"maxWeightedGpa"`
}

// Weighted computes the weighted GPA and the maximum attainable
// weighted GPA over parallel slices of course names and grades. A nil
// grade means the course has no grade yet and is excluded entirely;
// an empty input (or all-nil grades) yields zeros rather than an
// error.
func Weighted(courseNames []string, courseGrades []*float64) Result {
	var total, max float64
	validCourses := 0

	for i, name := range courseNames {
		if i >= len(courseGrades) || courseGrades[i] == nil {
			continue
		}
		validCourses++

		// ties round to even, matching the district's reports
		grade := math.RoundToEven(*courseGrades[i])
		scale := Scale(name)
		total += math.Max(0, scale-(100-grade)/10)
		max += scale
	}

	if validCourses == 0 {
		return Result{}
	}
	n := float64(validCourses)
	return Result{
		Weighted: round4(total / n),
		Max:      round4(max / n),
	}
}

func round4(v float64) float64 {
	return math.RoundToEven(v*10000) / 10000
}
