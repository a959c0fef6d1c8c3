// Package model defines the core roster data types.
package model

// Grade and age bounds enforced at the store boundary.
const (
	MinGrade = 0.0
	MaxGrade = 100.0
	MinAge   = 1
	MaxAge   = 150
)

// Student represents one stored roster record.
type Student struct {
	ID     int       `json:"id"`
	Name   string    `json:"name"`
	Age    int       `json:"age"`
	Grades []float64 `json:"grades"`
}

// Clone returns a deep copy. Grades is never nil in the copy so it
// always marshals as a JSON array.
func (s Student) Clone() Student {
	c := s
	c.Grades = make([]float64, len(s.Grades))
	copy(c.Grades, s.Grades)
	return c
}

// RankedStudent is a student with its computed average, as returned by ranking.
type RankedStudent struct {
	Student
	Average float64 `json:"average"`
}
