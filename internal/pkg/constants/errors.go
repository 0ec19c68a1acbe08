package constants

import "net/http"

// CodedError carries the HTTP status a domain error maps to.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrUnauthorized       = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrMissingAuthCookie  = NewCodedError(http.StatusUnauthorized, "missing auth token")
	ErrInvalidCredentials = NewCodedError(http.StatusUnauthorized, "invalid email or password")
	ErrForbidden          = NewCodedError(http.StatusForbidden, "forbidden for this role")
	ErrDBNotFound         = NewCodedError(http.StatusNotFound, "record not found")
	ErrEmailAlreadyTaken  = NewCodedError(http.StatusConflict, "email already registered")
	ErrInvalidTransition  = NewCodedError(http.StatusConflict, "status transition not allowed")
	ErrValidation         = NewCodedError(http.StatusBadRequest, "validation failed")
)
