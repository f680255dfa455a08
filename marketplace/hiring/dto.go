package hiring

import (
	"github.com/staffhive/staffhive/marketplace/application"
	"github.com/staffhive/staffhive/pkg/kernel"
)

// DecideRequest - a recruiter's terminal decision on one application
type DecideRequest struct {
	Applicant     application.ApplicantRef      `json:"applicant"`
	ApplicationID kernel.ApplicationID          `json:"application_id"`
	RecruiterID   kernel.RecruiterID            `json:"recruiter_id"`
	Decision      application.ApplicationStatus `json:"decision"`
}

// DecideResponse - the updated application and the appended ledger entry.
// Record is nil when the archive append was degraded (best-effort).
type DecideResponse struct {
	Application *application.Application `json:"application"`
	Record      *Record                  `json:"record,omitempty"`
}

// AttachRatingRequest - attach a rating/feedback to an existing record
type AttachRatingRequest struct {
	RecordID kernel.HiringRecordID `json:"record_id"`
	Rating   int                   `json:"rating"`
	Feedback string                `json:"feedback,omitempty"`
}
