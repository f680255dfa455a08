package applicant

import (
	"net/http"

	"github.com/staffhive/staffhive/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICANT")

// Error codes
var (
	CodeStaffNotFound        = ErrRegistry.Register("STAFF_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Staff profile not found")
	CodeInstituteNotFound    = ErrRegistry.Register("INSTITUTE_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Institute not found")
	CodeStudentNotFound      = ErrRegistry.Register("STUDENT_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Student not found on institute roster")
	CodeInvalidApplicantType = ErrRegistry.Register("INVALID_APPLICANT_TYPE", errx.TypeValidation, http.StatusBadRequest, "Applicant type must be staff or institute")
)

func ErrStaffNotFound() *errx.Error {
	return ErrRegistry.New(CodeStaffNotFound)
}

func ErrInstituteNotFound() *errx.Error {
	return ErrRegistry.New(CodeInstituteNotFound)
}

func ErrStudentNotFound() *errx.Error {
	return ErrRegistry.New(CodeStudentNotFound)
}

func ErrInvalidApplicantType() *errx.Error {
	return ErrRegistry.New(CodeInvalidApplicantType)
}
