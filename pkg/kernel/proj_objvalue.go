package kernel

type JobTitle string

type CompanyName string

type SalaryText string

type LocationText string

type ExperienceText string

type Skill string

// ApplicantType distinguishes the two applicant variants the marketplace
// supports. The variant decides which physical representation an
// application is stored in.
type ApplicantType string

const (
	// ApplicantTypeStaff - an individual staff member applying for themselves
	ApplicantTypeStaff ApplicantType = "staff"

	// ApplicantTypeInstitute - a student applied on their behalf by an institute
	ApplicantTypeInstitute ApplicantType = "institute"
)

// IsValid reports whether the applicant type is one of the known variants
func (t ApplicantType) IsValid() bool {
	return t == ApplicantTypeStaff || t == ApplicantTypeInstitute
}

func (t ApplicantType) String() string { return string(t) }
