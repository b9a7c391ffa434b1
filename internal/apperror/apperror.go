// Package apperror defines the error kinds surfaced by the service layer.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindNotFound           Kind = "NotFound"
	KindConflict           Kind = "Conflict"
	KindValidation         Kind = "Validation"
	KindPreconditionFailed Kind = "PreconditionFailed"
	KindStore              Kind = "StoreError"
)

// Machine-readable codes. Several codes share a kind.
const (
	CodeNotFound            = "NotFound"
	CodeInvalidInput        = "InvalidInput"
	CodeDuplicate           = "Duplicate"
	CodeDuplicateSetName    = "DuplicateSetName"
	CodeCountMismatch       = "CountMismatch"
	CodeLastSet             = "LastSetError"
	CodeInactiveSubject     = "InactiveSubject"
	CodeDuplicateAssignment = "DuplicateAssignment"
	CodeNoExamFound         = "NoExamFound"
	CodeAlreadySubmitted    = "AlreadySubmitted"
	CodeSetNotAssigned      = "SetNotAssigned"
	CodeInvalidQuestionID   = "InvalidQuestionId"
	CodeStaleWrite          = "StaleWrite"
	CodeStore               = "StoreError"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) WithDetails(details ...string) *Error {
	e.Details = append(e.Details, details...)
	return e
}

// HTTPStatus maps the error onto a response status.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		if e.Code == CodeDuplicateSetName {
			return http.StatusBadRequest
		}
		return http.StatusConflict
	case KindValidation, KindPreconditionFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, code, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, CodeNotFound, format, args...)
}

func Validation(format string, args ...any) *Error {
	return New(KindValidation, CodeInvalidInput, format, args...)
}

func Conflict(code, format string, args ...any) *Error {
	return New(KindConflict, code, format, args...)
}

func Precondition(code, format string, args ...any) *Error {
	return New(KindPreconditionFailed, code, format, args...)
}

// Store wraps an underlying persistence failure.
func Store(err error, format string, args ...any) *Error {
	e := New(KindStore, CodeStore, format, args...)
	e.Err = err
	return e
}

func CountMismatch(declared, sum int) *Error {
	return New(KindValidation, CodeCountMismatch,
		"total students (%d) does not match the sum of set students (%d)", declared, sum).
		WithDetails(fmt.Sprintf("declared=%d", declared), fmt.Sprintf("sum=%d", sum))
}

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf reports the kind of err; errors outside this package count as store errors.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindStore
}

func HasCode(err error, code string) bool {
	e, ok := As(err)
	return ok && e.Code == code
}
