package applicant

import (
	"github.com/staffhive/staffhive/marketplace/application"
	"github.com/staffhive/staffhive/pkg/kernel"
)

// RoleInstitute is the role literal an institute profile record must carry.
// Resolution fails when a record found under an institute id has any other
// role.
const RoleInstitute = "institute"

// StaffProfile is an individual staff member's profile record. Staff-flow
// applications are embedded directly in this record, so a staff member's
// duplicate check is a linear scan of one person's list.
type StaffProfile struct {
	ID           kernel.UserID             `json:"id" dynamodbav:"id"`
	Name         string                    `json:"name" dynamodbav:"name"`
	Email        string                    `json:"email" dynamodbav:"email"`
	Skills       []kernel.Skill            `json:"skills" dynamodbav:"skills"`
	Applications []application.Application `json:"applications" dynamodbav:"applications"`
}

// PlacementStatus is the denormalized placement marker on a roster entry
type PlacementStatus string

const (
	PlacementStatusNone   PlacementStatus = ""
	PlacementStatusPlaced PlacementStatus = "Placed"
)

// Student is one roster entry of an institute
type Student struct {
	ID     kernel.StudentID `json:"id" dynamodbav:"id"`
	Name   string           `json:"name" dynamodbav:"name"`
	Email  string           `json:"email" dynamodbav:"email"`
	Course string           `json:"course" dynamodbav:"course"`
	Year   string           `json:"year" dynamodbav:"year"`

	// Placement fields synced (best-effort) when the student is hired
	PlacementStatus PlacementStatus    `json:"placement_status,omitempty" dynamodbav:"placement_status,omitempty"`
	PlacedBy        kernel.RecruiterID `json:"placed_by,omitempty" dynamodbav:"placed_by,omitempty"`
	PlacedJobID     kernel.JobID       `json:"placed_job_id,omitempty" dynamodbav:"placed_job_id,omitempty"`
}

// InstituteProfile is an institute's profile record including its roster
type InstituteProfile struct {
	ID       kernel.InstituteID `json:"id" dynamodbav:"id"`
	Role     string             `json:"role" dynamodbav:"role"`
	Name     string             `json:"name" dynamodbav:"name"`
	Email    string             `json:"email" dynamodbav:"email"`
	Students []Student          `json:"students" dynamodbav:"students"`
}

// FindStudent returns the roster entry with the given id, or nil
func (p *InstituteProfile) FindStudent(id kernel.StudentID) *Student {
	for i := range p.Students {
		if p.Students[i].ID == id {
			return &p.Students[i]
		}
	}
	return nil
}

// SnapshotOf copies a roster entry into the point-in-time form stored on an
// institute-sourced application.
func SnapshotOf(s *Student) *application.StudentSnapshot {
	return &application.StudentSnapshot{
		StudentID: s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Course:    s.Course,
		Year:      s.Year,
	}
}

// Record is the outcome of resolving an applicant reference: the owning
// profile record plus, for institute students, the roster entry.
type Record struct {
	Type      kernel.ApplicantType
	Staff     *StaffProfile
	Institute *InstituteProfile
	Student   *Student
}
