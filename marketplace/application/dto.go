package application

import (
	"github.com/staffhive/staffhive/pkg/kernel"
)

// ApplyRequest - DTO for a single apply-for-job call
type ApplyRequest struct {
	Applicant   ApplicantRef       `json:"applicant"`
	RecruiterID kernel.RecruiterID `json:"recruiter_id"`
	JobID       kernel.JobID       `json:"job_id"`
	JobTitle    kernel.JobTitle    `json:"job_title"`
	CompanyName kernel.CompanyName `json:"company_name"`
}

// ApplyResponse - the created (or pre-existing) application. Repeated
// submissions are flagged, not rejected, so clients can retry safely.
type ApplyResponse struct {
	Application    *Application `json:"application"`
	AlreadyApplied bool         `json:"already_applied"`
}

// BulkApplyRequest - one institute action fanning out to many students
type BulkApplyRequest struct {
	Items []ApplyRequest `json:"items"`
}

// BulkApplyResponse - per-item outcome of a fan-out. The batch never aborts:
// duplicates and failures are reported alongside the creations.
type BulkApplyResponse struct {
	Created        []Application     `json:"created"`
	AlreadyApplied []Application     `json:"already_applied"`
	Failed         map[string]string `json:"failed,omitempty"`
	Total          int               `json:"total"`
}

// SearchCandidatesRequest - recruiter candidate search filters
type SearchCandidatesRequest struct {
	RecruiterID kernel.RecruiterID `json:"recruiter_id"`
	Query       string             `json:"query,omitempty"`
	Status      ApplicationStatus  `json:"status,omitempty"`
	JobID       kernel.JobID       `json:"job_id,omitempty"`
}

// CandidateView - one row of the recruiter's candidate list
type CandidateView struct {
	Application
	ApplicantName string `json:"applicant_name"`
}

// AppliedInstituteView - one institute that applied to a recruiter, with
// the applications it sourced
type AppliedInstituteView struct {
	InstituteID  kernel.InstituteID `json:"institute_id"`
	Applications []Application      `json:"applications"`
}
