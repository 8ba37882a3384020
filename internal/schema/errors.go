package schema

import "fmt"

// ValidationError is returned when a mandatory field is empty or a value has the wrong format
type ValidationError struct {
	Table  string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s %s", e.Table, e.Field, e.Reason)
}

// ConflictError is returned when a unique field value is already taken by another row
type ConflictError struct {
	Table string
	Field string
	Value interface{}
}

func (e *ConflictError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s.%s must be unique", e.Table, e.Field)
	}
	return fmt.Sprintf("%s.%s %v already exists", e.Table, e.Field, e.Value)
}

// ReferenceError is returned when a relation points to a row that does not exist
type ReferenceError struct {
	Table      string
	Field      string
	References string
	ID         interface{}
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s.%s references missing %s row %v", e.Table, e.Field, e.References, e.ID)
}

// NotFoundError is returned when the target row of an update does not exist
type NotFoundError struct {
	Table string
	ID    interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s row %v not found", e.Table, e.ID)
}
