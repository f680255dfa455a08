package stats

import (
	"github.com/staffhive/staffhive/pkg/kernel"
)

// RecruiterStatsView is a recruiter's dashboard aggregate, recomputed from
// the full record set on every read.
type RecruiterStatsView struct {
	RecruiterID       kernel.RecruiterID `json:"recruiter_id"`
	TotalApplications int                `json:"total_applications"`
	Hired             int                `json:"hired"`
	Rejected          int                `json:"rejected"`
	Pending           int                `json:"pending"`
}

// PlacementRateView is an institute's placement aggregate. Placed counts
// distinct students with at least one hire, so a student hired twice still
// counts once.
type PlacementRateView struct {
	InstituteID    kernel.InstituteID `json:"institute_id"`
	TotalStudents  int                `json:"total_students"`
	PlacedStudents int                `json:"placed_students"`
	Rate           float64            `json:"rate"`
}

// AveragePackageView is the mean of the parseable salary figures across an
// institute's hires, in LPA, rounded to one decimal. Zero when nothing
// parsed.
type AveragePackageView struct {
	InstituteID kernel.InstituteID `json:"institute_id"`
	AverageLPA  float64            `json:"average_lpa"`
	Hires       int                `json:"hires"`
	Parsed      int                `json:"parsed"`
}
