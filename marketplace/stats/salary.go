package stats

import (
	"regexp"
	"strconv"

	"github.com/staffhive/staffhive/pkg/kernel"
)

// Salary fields on job postings are free text. Exactly two shapes carry a
// usable figure: a range "3-4 LPA" (the high end counts) and a single
// value "6 LPA". Everything else is skipped, never treated as zero.
var (
	salaryRangePattern  = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)\s*LPA\s*$`)
	salarySinglePattern = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d+)?)\s*LPA\s*$`)
)

// ParseSalaryLPA extracts the annual package figure from a posting's salary
// text. The second return value reports whether the text was parseable.
func ParseSalaryLPA(text kernel.SalaryText) (float64, bool) {
	if m := salaryRangePattern.FindStringSubmatch(string(text)); m != nil {
		high, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, false
		}
		return high, true
	}

	if m := salarySinglePattern.FindStringSubmatch(string(text)); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return value, true
	}

	return 0, false
}
