package store

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/student-roster/internal/model"
)

func TestExportToFile(t *testing.T) {
	r := newTestRoster(t)
	seedSample(t, r)
	r.Add(AddParams{Name: "No Grades", Age: 22})

	path := filepath.Join(t.TempDir(), "students_data.json")
	require.NoError(t, r.ExportToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 5)
	assert.Equal(t, float64(1), got[0]["id"])
	assert.Equal(t, "Alice Johnson", got[0]["name"])
	assert.Equal(t, float64(20), got[0]["age"])
	assert.Equal(t, []any{85.0, 92.0, 78.0, 90.0}, got[0]["grades"])
	assert.Equal(t, []any{}, got[4]["grades"])
	assert.Len(t, got[0], 4, "only id, name, age, grades are exported")

	assert.Contains(t, string(data), "[\n  {\n    \"id\": 1,\n    \"name\": \"Alice Johnson\",")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestExportOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte("old contents that are longer than the new export"), 0o644))

	r := newTestRoster(t)
	require.NoError(t, r.ExportToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestExportUnwritablePath(t *testing.T) {
	r := newTestRoster(t)
	seedSample(t, r)

	path := filepath.Join(t.TempDir(), "missing", "dir", "out.json")
	err := r.ExportToFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export")

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestWriteFileAtomicKeepsPreviousFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

	boom := errors.New("disk full")
	err := writeFileAtomic(path, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestImportRoundTrip(t *testing.T) {
	src := newTestRoster(t)
	seedSample(t, src)
	src.Remove(2)

	path := filepath.Join(t.TempDir(), "roster.json")
	require.NoError(t, src.ExportToFile(path))

	dst, err := OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, src.All(), dst.All())

	id, err := dst.Add(AddParams{Name: "Eve", Age: 20})
	require.NoError(t, err)
	assert.Equal(t, 5, id, "next id continues after highest imported id")
}

func TestOpenFileMissing(t *testing.T) {
	r, err := OpenFile(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, r.Count())
}

func TestOpenFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := OpenFile(path)
	assert.Error(t, err)
}

func TestImportRejects(t *testing.T) {
	tests := []struct {
		name     string
		students []model.Student
	}{
		{"zero id", []model.Student{{ID: 0, Name: "A", Age: 20}}},
		{"max id", []model.Student{{ID: math.MaxInt, Name: "A", Age: 20}}},
		{"taken id", []model.Student{{ID: 1, Name: "A", Age: 20}}},
		{"duplicate in batch", []model.Student{{ID: 7, Name: "A", Age: 20}, {ID: 7, Name: "B", Age: 20}}},
		{"bad grade", []model.Student{{ID: 8, Name: "A", Age: 20, Grades: []float64{120}}}},
		{"bad age", []model.Student{{ID: 9, Name: "A", Age: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRoster(t)
			r.Add(AddParams{Name: "Existing", Age: 20})

			n, err := r.Import(tt.students)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 0, n)
			assert.Equal(t, 1, r.Count(), "rejected batch must not be partially applied")
		})
	}
}

func TestImportHighIDKeepsIDsPositive(t *testing.T) {
	r := newTestRoster(t)

	_, err := r.Import([]model.Student{{ID: math.MaxInt, Name: "Edge", Age: 20}})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = r.Import([]model.Student{{ID: math.MaxInt - 1, Name: "Edge", Age: 20}})
	require.NoError(t, err)

	_, err = r.Add(AddParams{Name: "Overflow", Age: 20})
	require.ErrorIs(t, err, ErrIDsExhausted)

	path := filepath.Join(t.TempDir(), "roster.json")
	require.NoError(t, r.ExportToFile(path))
	reopened, err := OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, reopened.Count())
}

func TestImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 10, "name": "Zed", "age": 30, "grades": [99]}]`), 0o644))

	r := newTestRoster(t)
	r.Add(AddParams{Name: "Existing", Age: 20})

	n, err := r.ImportFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	s, ok := r.FindByID(10)
	require.True(t, ok)
	assert.Equal(t, "Zed", s.Name)

	id, _ := r.Add(AddParams{Name: "Next", Age: 20})
	assert.Equal(t, 11, id)
}
