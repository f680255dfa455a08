package recruiter

import (
	"net/http"

	"github.com/staffhive/staffhive/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("RECRUITER")

// Error codes
var (
	CodeRecruiterNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Recruiter not found")
)

func ErrRecruiterNotFound() *errx.Error {
	return ErrRegistry.New(CodeRecruiterNotFound)
}
