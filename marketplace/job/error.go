package job

import (
	"net/http"

	"github.com/staffhive/staffhive/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job posting not found")
	CodeJobClosed   = ErrRegistry.Register("CLOSED", errx.TypeBusiness, http.StatusConflict, "Job posting is no longer accepting applications")
)

func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrJobClosed() *errx.Error {
	return ErrRegistry.New(CodeJobClosed)
}
