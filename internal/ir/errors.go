package ir

import (
	"errors"
	"fmt"
)

var (
	ErrNoOpenType   = errors.New("no structure is being declared")
	ErrNoField      = errors.New("the current structure has no fields")
	ErrZeroElements = errors.New("array element count must be at least 1")
	ErrEmptyName    = errors.New("name must not be empty")
	ErrInvalidKind  = errors.New("invalid field kind")
)

// DuplicateTypeError is returned when a structure name is declared twice.
// Prior is the definition that was registered first.
type DuplicateTypeError struct {
	Name  string
	Prior TypeDefinition
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("Struct %s is already defined as:\n%s", e.Name, e.Prior.String())
}

// DuplicateFieldError is returned when a structure declares the same field name twice.
type DuplicateFieldError struct {
	Type  string
	Field string
	Prior Field
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("Struct %s already has a field named %s defined as:\n%s", e.Type, e.Field, e.Prior.String())
}

// DuplicateInstanceError is returned when a top-level instance name is reused.
type DuplicateInstanceError struct {
	Name  string
	Prior Field
}

func (e *DuplicateInstanceError) Error() string {
	return fmt.Sprintf("Duplicate instance name: %s already defined as:\n%s", e.Name, e.Prior.String())
}

// UndefinedTypeError is returned when a struct-kind field names a type that
// was not declared before the declaration currently being built.
type UndefinedTypeError struct {
	// Scope is the enclosing structure, empty for top-level instances.
	Scope      string
	Field      string
	Referenced string
}

func (e *UndefinedTypeError) Error() string {
	if e.Scope == "" {
		return fmt.Sprintf("instance %s refers to undeclared struct %s", e.Field, e.Referenced)
	}
	if e.Scope == e.Referenced {
		return fmt.Sprintf("field %s of struct %s refers to its own struct", e.Field, e.Scope)
	}
	return fmt.Sprintf("field %s of struct %s refers to struct %s, which is not declared before it",
		e.Field, e.Scope, e.Referenced)
}

// InvalidFieldError reports a field whose shape is inconsistent with its kind.
type InvalidFieldError struct {
	Scope string
	Field Field
	Err   error
}

func (e *InvalidFieldError) Error() string {
	where := "instance " + e.Field.Name
	if e.Scope != "" {
		where = "field " + e.Field.Name + " of struct " + e.Scope
	}
	return fmt.Sprintf("%s: %v", where, e.Err)
}

func (e *InvalidFieldError) Unwrap() error { return e.Err }
