package recruiter

import (
	"github.com/staffhive/staffhive/pkg/kernel"
)

// Stats are the counters materialized onto the recruiter's profile record.
// They are bumped incrementally by the hiring lifecycle and rewritten from
// scratch by the stats reconciler, which is the authority when they drift.
type Stats struct {
	TotalApplications int `json:"total_applications" dynamodbav:"total_applications"`
	TotalHires        int `json:"total_hires" dynamodbav:"total_hires"`
}

// Profile is the recruiter's profile record. The engine touches only the
// identity fields and the counters; the rest of profile CRUD lives outside
// this subsystem.
type Profile struct {
	ID          kernel.RecruiterID `json:"id" dynamodbav:"id"`
	Name        string             `json:"name" dynamodbav:"name"`
	CompanyName kernel.CompanyName `json:"company_name" dynamodbav:"company_name"`
	Email       string             `json:"email" dynamodbav:"email"`
	Stats       Stats              `json:"stats" dynamodbav:"stats"`
}
