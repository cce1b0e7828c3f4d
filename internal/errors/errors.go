package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies allocation failures so callers can react without parsing messages
type ErrorKind string

const (
	KindInvalidSelection    ErrorKind = "invalid_selection"
	KindInvalidInput        ErrorKind = "invalid_input"
	KindNotFound            ErrorKind = "not_found"
	KindTimeout             ErrorKind = "timeout"
	KindTransportFailure    ErrorKind = "transport_failure"
	KindPartialBatchFailure ErrorKind = "partial_batch_failure"
	KindCancelled           ErrorKind = "cancelled"
	KindInternal            ErrorKind = "internal"
)

// statusByKind maps error kinds to HTTP statuses
var statusByKind = map[ErrorKind]int{
	KindInvalidSelection:    http.StatusBadRequest,
	KindInvalidInput:        http.StatusBadRequest,
	KindNotFound:            http.StatusNotFound,
	KindTimeout:             http.StatusGatewayTimeout,
	KindTransportFailure:    http.StatusBadGateway,
	KindPartialBatchFailure: http.StatusMultiStatus,
	KindCancelled:           http.StatusConflict,
	KindInternal:            http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status for an error kind
func HTTPStatus(kind ErrorKind) int {
	if s, ok := statusByKind[kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// AllocationError is returned by the allocation engine. Succeeded and Failed are
// only populated for KindPartialBatchFailure.
type AllocationError struct {
	Kind      ErrorKind
	Message   string
	Succeeded int
	Failed    int
}

func (e *AllocationError) Error() string {
	if e.Kind == KindPartialBatchFailure {
		return fmt.Sprintf("%s: %s (succeeded=%d, failed=%d)", e.Kind, e.Message, e.Succeeded, e.Failed)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches any AllocationError of the same kind
func (e *AllocationError) Is(target error) bool {
	t, ok := target.(*AllocationError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrProjectNotFound      = &NotFoundError{Entity: "project"}
	ErrModuleNotFound       = &NotFoundError{Entity: "module"}
	ErrSubmoduleNotFound    = &NotFoundError{Entity: "submodule"}
	ErrReleaseNotFound      = &NotFoundError{Entity: "release"}
	ErrTestCaseNotFound     = &NotFoundError{Entity: "test case"}
	ErrEmployeeNotFound     = &NotFoundError{Entity: "employee"}
	ErrQAAssignmentNotFound = &NotFoundError{Entity: "qa assignment"}
	ErrSelectionNotFound    = &NotFoundError{Entity: "selection session"}
)

// Already Exists Errors
var (
	ErrQAAssignmentExists = &AlreadyExistsError{Entity: "qa assignment", Context: "for this test case in the release"}
)

// Allocation Errors
var (
	ErrInvalidSelection    = &AllocationError{Kind: KindInvalidSelection, Message: "selection violates the active allocation mode"}
	ErrInvalidInput        = &AllocationError{Kind: KindInvalidInput, Message: "invalid allocation input"}
	ErrNotFound            = &AllocationError{Kind: KindNotFound, Message: "referenced entity does not exist"}
	ErrTimeout             = &AllocationError{Kind: KindTimeout, Message: "allocation request timed out"}
	ErrTransportFailure    = &AllocationError{Kind: KindTransportFailure, Message: "allocation service unavailable"}
	ErrPartialBatchFailure = &AllocationError{Kind: KindPartialBatchFailure, Message: "batch completed with failures"}
	ErrCancelled           = &AllocationError{Kind: KindCancelled, Message: "allocation batch cancelled"}
)

// Business Logic Errors
var (
	ErrUnknownMode          = errors.New("unknown allocation mode")
	ErrEmployeeNotQA        = errors.New("employee is not a QA engineer")
	ErrEmployeeNotDeveloper = errors.New("employee is not a developer")
)

// Configuration Errors
var (
	ErrAllocationServiceURLMissing = &ConfigurationError{Message: "ALLOCATION_SERVICE_URL must be set for the remote allocation backend"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError or an allocation error of kind NotFound
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr) || errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// KindOf resolves the ErrorKind carried by err
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var allocErr *AllocationError
	if errors.As(err, &allocErr) {
		return allocErr.Kind
	}
	switch {
	case IsNotFound(err):
		return KindNotFound
	case IsValidation(err), IsAlreadyExists(err):
		return KindInvalidInput
	case errors.Is(err, ErrUnknownMode), errors.Is(err, ErrEmployeeNotQA), errors.Is(err, ErrEmployeeNotDeveloper):
		return KindInvalidInput
	}
	return KindInternal
}

// NewAllocationError creates an AllocationError of the given kind
func NewAllocationError(kind ErrorKind, format string, args ...interface{}) error {
	return &AllocationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewPartialBatchFailure creates a PartialBatchFailure with outcome counts
func NewPartialBatchFailure(message string, succeeded, failed int) error {
	return &AllocationError{Kind: KindPartialBatchFailure, Message: message, Succeeded: succeeded, Failed: failed}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
