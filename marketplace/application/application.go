package application

import (
	"fmt"
	"time"

	"github.com/staffhive/staffhive/pkg/kernel"
)

// ApplicationStatus represents the lifecycle state of an application.
// Staff-flow applications start as "Applied" and institute-flow ones as
// "pending"; both literals denote the same logical initial state and are
// kept distinct only for compatibility with existing records.
type ApplicationStatus string

const (
	ApplicationStatusApplied  ApplicationStatus = "Applied"
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusHired    ApplicationStatus = "Hired"
	ApplicationStatusRejected ApplicationStatus = "Rejected"
)

// IsInitial checks if the status is the logical initial state
func (s ApplicationStatus) IsInitial() bool {
	return s == ApplicationStatusApplied || s == ApplicationStatusPending
}

// IsTerminal checks if the status is a final decision
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusHired || s == ApplicationStatusRejected
}

// InitialStatusFor returns the initial status literal used by the given
// applicant variant.
func InitialStatusFor(applicantType kernel.ApplicantType) ApplicationStatus {
	if applicantType == kernel.ApplicantTypeInstitute {
		return ApplicationStatusPending
	}
	return ApplicationStatusApplied
}

// ApplicantRef identifies the applicant behind an application. The Type tag
// selects which physical representation the application lives in.
type ApplicantRef struct {
	Type        kernel.ApplicantType `json:"type" dynamodbav:"type"`
	StaffID     kernel.UserID        `json:"staff_id,omitempty" dynamodbav:"staff_id,omitempty"`
	InstituteID kernel.InstituteID   `json:"institute_id,omitempty" dynamodbav:"institute_id,omitempty"`
	StudentID   kernel.StudentID     `json:"student_id,omitempty" dynamodbav:"student_id,omitempty"`
}

// StaffRef builds the reference for a staff applicant
func StaffRef(staffID kernel.UserID) ApplicantRef {
	return ApplicantRef{Type: kernel.ApplicantTypeStaff, StaffID: staffID}
}

// StudentRef builds the reference for an institute student applicant
func StudentRef(instituteID kernel.InstituteID, studentID kernel.StudentID) ApplicantRef {
	return ApplicantRef{
		Type:        kernel.ApplicantTypeInstitute,
		InstituteID: instituteID,
		StudentID:   studentID,
	}
}

// StudentSnapshot is the point-in-time copy of a roster entry taken when an
// institute applies on a student's behalf. It is kept for historical display
// even if the live roster entry changes later.
type StudentSnapshot struct {
	StudentID kernel.StudentID `json:"student_id" dynamodbav:"student_id"`
	Name      string           `json:"name" dynamodbav:"name"`
	Email     string           `json:"email" dynamodbav:"email"`
	Course    string           `json:"course" dynamodbav:"course"`
	Year      string           `json:"year" dynamodbav:"year"`
}

// Application is the central entity of the hiring lifecycle, regardless of
// which of its two physical representations it is stored in.
type Application struct {
	ID          kernel.ApplicationID `json:"id" dynamodbav:"id"`
	Applicant   ApplicantRef         `json:"applicant" dynamodbav:"applicant"`
	RecruiterID kernel.RecruiterID   `json:"recruiter_id" dynamodbav:"recruiter_id"`
	JobID       kernel.JobID         `json:"job_id" dynamodbav:"job_id"`
	JobTitle    kernel.JobTitle      `json:"job_title" dynamodbav:"job_title"`
	CompanyName kernel.CompanyName   `json:"company_name" dynamodbav:"company_name"`
	Status      ApplicationStatus    `json:"status" dynamodbav:"status"`
	AppliedAt   time.Time            `json:"applied_at" dynamodbav:"applied_at"`
	UpdatedAt   time.Time            `json:"updated_at" dynamodbav:"updated_at"`

	// Snapshot is set for institute-sourced applications only
	Snapshot *StudentSnapshot `json:"snapshot,omitempty" dynamodbav:"snapshot,omitempty"`
}

// CompositeKey builds the id under which an institute-sourced application is
// stored. Keying by job and student makes the duplicate check a point read
// instead of a scan.
func CompositeKey(jobID kernel.JobID, studentID kernel.StudentID) string {
	return fmt.Sprintf("%s_%s", jobID, studentID)
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsDecided checks if a terminal decision has been made
func (a *Application) IsDecided() bool {
	return a.Status.IsTerminal()
}

// CanTransition checks if the status may move to newStatus. The only
// transitions defined are initial -> Hired and initial -> Rejected; both
// targets are final.
func (a *Application) CanTransition(newStatus ApplicationStatus) bool {
	return a.Status.IsInitial() && newStatus.IsTerminal()
}

// Transition moves the application to newStatus
func (a *Application) Transition(newStatus ApplicationStatus) error {
	if a.IsDecided() {
		return ErrAlreadyDecided().
			WithDetail("application_id", a.ID.String()).
			WithDetail("status", a.Status)
	}

	if !a.CanTransition(newStatus) {
		return ErrInvalidStatusTransition().
			WithDetail("current_status", a.Status).
			WithDetail("new_status", newStatus)
	}

	a.Status = newStatus
	a.UpdatedAt = time.Now()
	return nil
}
