package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrTokenInvalid     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrPermissionDenied = errors.New("permission denied")
)

// Scheduling errors
var (
	// ErrScheduleConflict marks a rejected assignment; the CustomError
	// carrying it holds the structured conflict list in Details.
	ErrScheduleConflict = errors.New("schedule conflict")

	// ErrDuplicateSection is a uniqueness violation on
	// (semester, course, sectionNumber) — data integrity, not time overlap.
	ErrDuplicateSection = errors.New("section number already used for this course and semester")

	// ErrStateTransition marks an invalid lifecycle transition, such as
	// publishing a semester that still has draft schedules.
	ErrStateTransition = errors.New("invalid schedule state transition")

	// ErrCollaboratorUnavailable marks a failed reference-data fetch;
	// callers may retry, the engine does not.
	ErrCollaboratorUnavailable = errors.New("reference data unavailable")
)

// Semester errors
var (
	ErrSemesterNotFound = errors.New("semester not found")
	ErrSemesterInactive = errors.New("semester is not active")
)

// Reference-data errors
var (
	ErrCourseNotFound    = errors.New("course not found")
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrClassroomNotFound = errors.New("classroom not found")
	ErrTimeSlotNotFound  = errors.New("time slot not found")
	ErrSectionNotFound   = errors.New("section not found")
	ErrScheduleNotFound  = errors.New("schedule not found")
)

// NewValidationError creates a validation error with a message.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewConflictError creates a schedule conflict error carrying details.
func NewConflictError(message string, details map[string]interface{}) error {
	return &CustomError{
		Err:     ErrScheduleConflict,
		Message: message,
		Code:    "SCHEDULE_CONFLICT",
		Details: details,
	}
}

// NewStateTransitionError creates a lifecycle transition error with a message.
func NewStateTransitionError(message string) error {
	return &CustomError{
		Err:     ErrStateTransition,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
