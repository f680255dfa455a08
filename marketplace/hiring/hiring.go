package hiring

import (
	"time"

	"github.com/staffhive/staffhive/marketplace/application"
	"github.com/staffhive/staffhive/pkg/kernel"
)

// Record is the append-oriented ledger entry written when a terminal
// decision is made on an application. It lives independently of the live
// application record and is never deleted; the only later mutation is
// attaching a rating.
type Record struct {
	ID          kernel.HiringRecordID          `json:"id" dynamodbav:"id"`
	Applicant   application.ApplicantRef       `json:"applicant" dynamodbav:"applicant"`
	RecruiterID kernel.RecruiterID             `json:"recruiter_id" dynamodbav:"recruiter_id"`
	JobID       kernel.JobID                   `json:"job_id" dynamodbav:"job_id"`
	JobTitle    kernel.JobTitle                `json:"job_title" dynamodbav:"job_title"`
	Status      application.ApplicationStatus  `json:"status" dynamodbav:"status"`
	DecidedAt   time.Time                      `json:"decided_at" dynamodbav:"decided_at"`
	Snapshot    *application.StudentSnapshot   `json:"snapshot,omitempty" dynamodbav:"snapshot,omitempty"`

	// Staff-flow convenience fields, attached after the fact
	Rating   *int   `json:"rating,omitempty" dynamodbav:"rating,omitempty"`
	Feedback string `json:"feedback,omitempty" dynamodbav:"feedback,omitempty"`
}

// IsHire checks if the record captures a hire decision
func (r *Record) IsHire() bool {
	return r.Status == application.ApplicationStatusHired
}
