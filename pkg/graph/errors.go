package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrVertexNotFound  = errors.New("vertex not found")
	ErrKindConflict    = errors.New("vertex already registered under a different kind")
	ErrInvalidSeverity = errors.New("severity must be a positive integer")
	ErrNotBipartite    = errors.New("edge must connect a symptom and a disease")
	ErrNoPath          = errors.New("no path between vertices")
)

// GraphError provides structured error information for graph operations.
type GraphError struct {
	Op     string // Operation that failed (e.g., "AddVertex", "ShortestPath")
	Entity string // Entity type ("vertex", "edge", "path")
	Name   string // Vertex name, or "a--b" for edges and paths
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.Name, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// ErrorBuilder provides a fluent interface for building GraphErrors.
type ErrorBuilder struct {
	err GraphError
}

// NewError creates a new error builder with the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: GraphError{Op: op}}
}

// Vertex sets the entity to "vertex" with the given name.
func (b *ErrorBuilder) Vertex(name string) *ErrorBuilder {
	b.err.Entity = "vertex"
	b.err.Name = name
	return b
}

// Edge sets the entity to "edge" between the given endpoints.
func (b *ErrorBuilder) Edge(a, c string) *ErrorBuilder {
	b.err.Entity = "edge"
	b.err.Name = a + "--" + c
	return b
}

// Path sets the entity to "path" between the given endpoints.
func (b *ErrorBuilder) Path(source, target string) *ErrorBuilder {
	b.err.Entity = "path"
	b.err.Name = source + "--" + target
	return b
}

// Cause sets the underlying error cause.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Err returns the error as an error interface.
func (b *ErrorBuilder) Err() error {
	return &b.err
}

// VertexNotFoundError creates a vertex not found error.
func VertexNotFoundError(op, name string) error {
	return NewError(op).Vertex(name).Cause(ErrVertexNotFound).Err()
}

// IsNotFound returns true if the error indicates a missing vertex or path.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrVertexNotFound) || errors.Is(err, ErrNoPath)
}
