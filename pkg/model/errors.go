package model

import "fmt"

// ErrorCode represents a structured API error code.
type ErrorCode string

const (
	ErrValidation    ErrorCode = "VALIDATION_ERROR"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrUnsatisfiable ErrorCode = "UNSATISFIABLE"
	ErrInternal      ErrorCode = "INTERNAL_ERROR"
)

// APIError is a structured error returned by the manpower API.
type APIError struct {
	Code    ErrorCode    `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// FieldError describes a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// NewValidationError creates an APIError with validation details.
func NewValidationError(msg string, details ...FieldError) *APIError {
	return &APIError{Code: ErrValidation, Message: msg, Details: details}
}

// NewNotFoundError creates a NOT_FOUND APIError.
func NewNotFoundError(resource, id string) *APIError {
	return &APIError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s '%s' not found", resource, id),
	}
}

// ReferentialIntegrityError is returned by the loader when a record points at
// a person or skill ID that was never loaded.
type ReferentialIntegrityError struct {
	Source string // record set holding the reference, e.g. "skill matrix"
	Field  string // referencing field, e.g. "SkillId"
	ID     int
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("invalid %s: no %s found with id %d", e.Source, entityOf(e.Field), e.ID)
}

func entityOf(field string) string {
	switch field {
	case "PersonId":
		return "person"
	case "SkillId", "SkillRequired":
		return "skill"
	}
	return field
}

// DuplicateIDError is returned by the loader when two records of the same
// entity share an ID.
type DuplicateIDError struct {
	Entity string
	ID     int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate %s id %d", e.Entity, e.ID)
}

// UnsatisfiableTaskError is returned by the scheduler when no person holds the
// skill a task requires.
type UnsatisfiableTaskError struct {
	TaskID  int
	SkillID int
}

func (e *UnsatisfiableTaskError) Error() string {
	return fmt.Sprintf("task %d is unsatisfiable: no person holds skill %d", e.TaskID, e.SkillID)
}
