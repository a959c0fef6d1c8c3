package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"

	"github.com/rcliao/student-roster/internal/model"
)

// ExportToFile writes every student as an indented JSON array to path,
// replacing any existing file. The data is written to a temporary file in the
// same directory and renamed into place, so a failed export leaves the
// previous file intact.
func (r *Roster) ExportToFile(path string) error {
	students := r.All()

	err := writeFileAtomic(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(students)
	})
	if err != nil {
		r.logger.Error("export failed", "path", path, "error", err)
		return fmt.Errorf("export %s: %w", path, err)
	}

	r.logger.Debug("roster exported", "path", path, "students", len(students))
	return nil
}

func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+ulid.Make().String()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err = write(f); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Import stores previously exported students, keeping their ids. The whole
// batch is rejected if any record is invalid or its id is already taken.
// nextID advances past the highest imported id.
func (r *Roster) Import(students []model.Student) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	taken := make(map[int]bool, len(r.students)+len(students))
	for _, s := range r.students {
		taken[s.ID] = true
	}

	maxID := 0
	for _, s := range students {
		if s.ID < 1 {
			return 0, &ValidationError{Field: "id", Value: s.ID, Reason: "must be positive"}
		}
		if s.ID == math.MaxInt {
			return 0, &ValidationError{Field: "id", Value: s.ID, Reason: "leaves no room for further ids"}
		}
		if taken[s.ID] {
			return 0, &ValidationError{Field: "id", Value: s.ID, Reason: "already in use"}
		}
		if err := validateStudent(s.Name, s.Age, s.Grades); err != nil {
			return 0, fmt.Errorf("student %d: %w", s.ID, err)
		}
		taken[s.ID] = true
		maxID = max(maxID, s.ID)
	}

	for _, s := range students {
		r.students = append(r.students, s.Clone())
	}
	if maxID >= r.nextID {
		r.nextID = maxID + 1
	}

	return len(students), nil
}

// ImportFile reads a JSON array produced by ExportToFile and imports it.
func (r *Roster) ImportFile(path string) (int, error) {
	students, err := readFile(path)
	if err != nil {
		return 0, err
	}
	return r.Import(students)
}

// OpenFile loads a roster from an export file. A missing file yields an
// empty roster.
func OpenFile(path string, opts ...Option) (*Roster, error) {
	r := NewRoster(opts...)

	students, err := readFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return r, nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := r.Import(students); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return r, nil
}

func readFile(path string) ([]model.Student, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var students []model.Student
	if err := json.Unmarshal(data, &students); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return students, nil
}
