// Package store provides the roster storage interface and its in-memory implementation.
package store

import (
	"errors"
	"fmt"

	"github.com/rcliao/student-roster/internal/model"
)

var (
	// ErrNotFound is returned when no student matches the given id.
	ErrNotFound = errors.New("student not found")

	// ErrInvalidInput is wrapped by every ValidationError.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIDsExhausted is returned by Add once the next id would overflow.
	ErrIDsExhausted = errors.New("no ids left")
)

// ValidationError describes a rejected field value.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// AddParams holds parameters for adding a student.
type AddParams struct {
	Name   string
	Age    int
	Grades []float64 // nil means no grades yet
}

// SearchParams holds parameters for searching students by name.
type SearchParams struct {
	Query string
	Limit int // 0 means no limit
}

// Store defines the roster storage interface.
type Store interface {
	// Add validates and stores a new student. Returns the assigned id.
	Add(p AddParams) (int, error)

	// FindByID returns a copy of the student with the given id.
	FindByID(id int) (model.Student, bool)

	// FindByName returns a copy of the first student whose name matches exactly.
	FindByName(name string) (model.Student, bool)

	// FindByNameFold is FindByName ignoring case.
	FindByNameFold(name string) (model.Student, bool)

	// UpdateGrades replaces the grade list of a student.
	UpdateGrades(id int, grades []float64) error

	// AddGrade appends one grade to a student.
	AddGrade(id int, grade float64) error

	// Update applies fn to a student under the store's control.
	Update(id int, fn func(*model.Student) error) error

	// Remove deletes a student. Returns false if the id is unknown.
	Remove(id int) bool

	// All returns copies of every student in insertion order.
	All() []model.Student

	// Count returns the number of stored students.
	Count() int

	// TopStudents ranks graded students by average, highest first.
	TopStudents(n int) []model.RankedStudent

	// Search finds students whose name contains the query, ignoring case.
	Search(p SearchParams) []model.Student

	// Stats summarises the roster.
	Stats() Stats

	// ExportToFile writes the roster as a JSON array to path.
	ExportToFile(path string) error

	// Import adds previously exported students, keeping their ids.
	Import(students []model.Student) (int, error)

	// ImportFile reads an export file and imports it.
	ImportFile(path string) (int, error)
}
