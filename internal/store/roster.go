package store

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/rcliao/student-roster/internal/grades"
	"github.com/rcliao/student-roster/internal/model"
)

// DefaultTopCount is used by TopStudents when n <= 0.
const DefaultTopCount = 3

// Roster implements Store in memory. It exclusively owns its records:
// every read returns a copy and every write goes through a method.
type Roster struct {
	mu       sync.Mutex
	students []model.Student
	nextID   int
	logger   *slog.Logger
}

// Option configures a Roster.
type Option func(*Roster)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Roster) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRoster creates an empty roster whose first id is 1.
func NewRoster(opts ...Option) *Roster {
	r := &Roster{
		nextID: 1,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ Store = (*Roster)(nil)

func (r *Roster) Add(p AddParams) (int, error) {
	if err := validateStudent(p.Name, p.Age, p.Grades); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nextID == math.MaxInt {
		return 0, ErrIDsExhausted
	}

	s := model.Student{
		ID:     r.nextID,
		Name:   p.Name,
		Age:    p.Age,
		Grades: p.Grades,
	}.Clone()
	r.students = append(r.students, s)
	r.nextID++

	r.logger.Debug("student added", "id", s.ID, "name", s.Name)
	return s.ID, nil
}

func (r *Roster) FindByID(id int) (model.Student, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		return r.students[i].Clone(), true
	}
	return model.Student{}, false
}

func (r *Roster) FindByName(name string) (model.Student, bool) {
	return r.findName(func(n string) bool { return n == name })
}

func (r *Roster) FindByNameFold(name string) (model.Student, bool) {
	return r.findName(func(n string) bool { return strings.EqualFold(n, name) })
}

func (r *Roster) findName(match func(string) bool) (model.Student, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.students {
		if match(s.Name) {
			return s.Clone(), true
		}
	}
	return model.Student{}, false
}

func (r *Roster) UpdateGrades(id int, gs []float64) error {
	return r.Update(id, func(s *model.Student) error {
		s.Grades = append([]float64{}, gs...)
		return nil
	})
}

func (r *Roster) AddGrade(id int, grade float64) error {
	return r.Update(id, func(s *model.Student) error {
		s.Grades = append(s.Grades, grade)
		return nil
	})
}

// Update runs fn against a working copy of the student and commits it only
// if fn succeeds and the result still validates. The id cannot be changed.
func (r *Roster) Update(id int, fn func(*model.Student) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("update %d: %w", id, ErrNotFound)
	}

	work := r.students[i].Clone()
	if err := fn(&work); err != nil {
		return fmt.Errorf("update %d: %w", id, err)
	}
	if work.ID != id {
		return &ValidationError{Field: "id", Value: work.ID, Reason: "id is immutable"}
	}
	if err := validateStudent(work.Name, work.Age, work.Grades); err != nil {
		return err
	}

	r.students[i] = work.Clone()
	return nil
}

func (r *Roster) Remove(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.students = append(r.students[:i], r.students[i+1:]...)
	r.logger.Debug("student removed", "id", id)
	return true
}

func (r *Roster) All() []model.Student {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Student, len(r.students))
	for i, s := range r.students {
		out[i] = s.Clone()
	}
	return out
}

func (r *Roster) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.students)
}

// TopStudents returns up to n graded students with their averages, highest
// first. Students without grades are not ranked. Ties keep insertion order.
func (r *Roster) TopStudents(n int) []model.RankedStudent {
	if n <= 0 {
		n = DefaultTopCount
	}

	r.mu.Lock()
	ranked := make([]model.RankedStudent, 0, len(r.students))
	for _, s := range r.students {
		if len(s.Grades) == 0 {
			continue
		}
		ranked = append(ranked, model.RankedStudent{
			Student: s.Clone(),
			Average: grades.Average(s.Grades),
		})
	}
	r.mu.Unlock()

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Average > ranked[j].Average
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// indexOf must be called with mu held.
func (r *Roster) indexOf(id int) int {
	for i := range r.students {
		if r.students[i].ID == id {
			return i
		}
	}
	return -1
}

func validateStudent(name string, age int, gs []float64) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Value: fmt.Sprintf("%q", name), Reason: "must not be empty"}
	}
	if age < model.MinAge || age > model.MaxAge {
		return &ValidationError{Field: "age", Value: age,
			Reason: fmt.Sprintf("must be between %d and %d", model.MinAge, model.MaxAge)}
	}
	for _, g := range gs {
		if !grades.ValidateGrade(g) {
			return &ValidationError{Field: "grade", Value: g,
				Reason: fmt.Sprintf("must be between %g and %g", model.MinGrade, model.MaxGrade)}
		}
	}
	return nil
}
