package core

import (
	"errors"
	"fmt"
)

// OperationConflictError is raised when two wire operations of one resource
// are classified into the same operation key.
type OperationConflictError struct {
	Resource            string
	OperationKey        string
	OperationID         string
	ExistingOperationID string
	Path                string
	Method              string
}

func (e *OperationConflictError) Error() string {
	return fmt.Sprintf(
		"operation name conflict: %s:%s (%s) maps to '%s' of resource '%s' already taken by '%s'",
		e.Path, e.Method, e.OperationID, e.OperationKey, e.Resource, e.ExistingOperationID,
	)
}

// ActionDiscriminatorError is raised when an action endpoint accepts a oneOf
// request body that is not tagged as an action union.
type ActionDiscriminatorError struct {
	Path          string
	Discriminator string
}

func (e *ActionDiscriminatorError) Error() string {
	return fmt.Sprintf(
		"cannot generate metadata for %s since request body is not having action discriminator (got '%s')",
		e.Path, e.Discriminator,
	)
}

// ActionBodyError is raised when the request bodies of an action endpoint
// cannot be extracted.
type ActionBodyError struct {
	Path   string
	Reason string
}

func (e *ActionBodyError) Error() string {
	return fmt.Sprintf("cannot get bodies for %s: %s", e.Path, e.Reason)
}

// UnclassifiedOperationError describes a path/method pair no rule matched.
// It is never fatal: the operation is dropped with a warning.
type UnclassifiedOperationError struct {
	Path   string
	Method string
}

func (e *UnclassifiedOperationError) Error() string {
	return fmt.Sprintf("cannot identify op name for %s:%s", e.Path, e.Method)
}

// ResponseSchemaError describes a show operation whose response cannot back
// a synthesized find operation. It is never fatal.
type ResponseSchemaError struct {
	OperationID string
	Reason      string
}

func (e *ResponseSchemaError) Error() string {
	return fmt.Sprintf("cannot process response of %s operation: %s", e.OperationID, e.Reason)
}

func IsOperationConflictErr(err error) bool {
	var conflictErr *OperationConflictError
	return errors.As(err, &conflictErr)
}

func IsActionDiscriminatorErr(err error) bool {
	var discriminatorErr *ActionDiscriminatorError
	return errors.As(err, &discriminatorErr)
}

func IsActionBodyErr(err error) bool {
	var bodyErr *ActionBodyError
	return errors.As(err, &bodyErr)
}

func IsUnclassifiedOperationErr(err error) bool {
	var unclassifiedErr *UnclassifiedOperationError
	return errors.As(err, &unclassifiedErr)
}

func IsResponseSchemaErr(err error) bool {
	var schemaErr *ResponseSchemaError
	return errors.As(err, &schemaErr)
}

// IsFatal reports whether err must abort the generation run of a service.
func IsFatal(err error) bool {
	return IsOperationConflictErr(err) || IsActionDiscriminatorErr(err) || IsActionBodyErr(err)
}
