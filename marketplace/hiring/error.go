package hiring

import (
	"net/http"

	"github.com/staffhive/staffhive/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("HIRING")

// Error codes
var (
	CodeRecordNotFound  = ErrRegistry.Register("RECORD_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Hiring record not found")
	CodeInvalidDecision = ErrRegistry.Register("INVALID_DECISION", errx.TypeValidation, http.StatusBadRequest, "Decision must be Hired or Rejected")
)

func ErrRecordNotFound() *errx.Error {
	return ErrRegistry.New(CodeRecordNotFound)
}

func ErrInvalidDecision() *errx.Error {
	return ErrRegistry.New(CodeInvalidDecision)
}
