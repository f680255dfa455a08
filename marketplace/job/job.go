package job

import (
	"time"

	"github.com/staffhive/staffhive/pkg/kernel"
)

// JobStatus represents the status of a job posting
type JobStatus string

const (
	JobStatusActive JobStatus = "Active" // Accepting applications
	JobStatusClosed JobStatus = "Closed" // No longer accepting applications
)

// UnknownJobTitle is rendered for applications whose job posting has been
// deleted. Orphaned references degrade to this title; nothing cascades.
const UnknownJobTitle kernel.JobTitle = "Unknown Job"

// JobPosting is a recruiter's job offer. The engine only reads postings and
// bumps the application counter; posting CRUD lives outside this subsystem.
type JobPosting struct {
	ID           kernel.JobID         `json:"id" dynamodbav:"id"`
	RecruiterID  kernel.RecruiterID   `json:"recruiter_id" dynamodbav:"recruiter_id"`
	Title        kernel.JobTitle      `json:"title" dynamodbav:"title"`
	CompanyName  kernel.CompanyName   `json:"company_name" dynamodbav:"company_name"`
	Location     kernel.LocationText  `json:"location" dynamodbav:"location"`
	Salary       kernel.SalaryText    `json:"salary" dynamodbav:"salary"`
	Experience   kernel.ExperienceText `json:"experience" dynamodbav:"experience"`
	Skills       []kernel.Skill       `json:"skills" dynamodbav:"skills"`
	Status       JobStatus            `json:"status" dynamodbav:"status"`
	Applications int                  `json:"applications" dynamodbav:"applications"`
	PostedAt     time.Time            `json:"posted_at" dynamodbav:"posted_at"`
}

// IsActive checks if the posting accepts applications
func (j *JobPosting) IsActive() bool {
	return j.Status == JobStatusActive
}
