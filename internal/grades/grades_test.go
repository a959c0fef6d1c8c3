package grades

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/student-roster/internal/model"
)

func TestAverage(t *testing.T) {
	assert.Equal(t, 82.5, Average([]float64{80, 85, 90, 75}))
	assert.Equal(t, 0.0, Average(nil))
	assert.Equal(t, 0.0, Average([]float64{}))
	assert.Equal(t, 42.0, Average([]float64{42}))
}

func TestValidateGrade(t *testing.T) {
	tests := []struct {
		v    float64
		want bool
	}{
		{-5, false},
		{105, false},
		{0, true},
		{100, true},
		{85, true},
		{-0.01, false},
		{100.01, false},
		{math.NaN(), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateGrade(tt.v), "ValidateGrade(%v)", tt.v)
	}
}

func TestLetterGrade(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{100, "A+"},
		{97, "A+"},
		{96.99, "A"},
		{95, "A"},
		{93, "A"},
		{90, "A-"},
		{89.99, "B+"},
		{87, "B+"},
		{85, "B"},
		{80, "B-"},
		{77, "C+"},
		{75, "C"},
		{70, "C-"},
		{67, "D+"},
		{63, "D"},
		{60, "D-"},
		{59.99, "F"},
		{59, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LetterGrade(tt.avg), "LetterGrade(%v)", tt.avg)
	}
}

func TestFindOutliers(t *testing.T) {
	tests := []struct {
		name   string
		grades []float64
		want   []float64
	}{
		{"empty", nil, []float64{}},
		{"two grades", []float64{0, 100}, []float64{}},
		{"uniform", []float64{80, 80, 80, 80}, []float64{}},
		{"high outlier", []float64{80, 82, 79, 81, 80, 82, 79, 81, 200}, []float64{200}},
		{"low outlier", []float64{90, 91, 89, 90, 92, 88, 90, 91, 10}, []float64{10}},
		// Population sd bounds the z-score of a single point by (n-1)/sqrt(n),
		// so five grades can never produce a 2 sigma outlier.
		{"five grades", []float64{80, 82, 79, 81, 200}, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindOutliers(tt.grades)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStdDev(t *testing.T) {
	assert.Equal(t, 0.0, StdDev(nil))
	assert.InDelta(t, 2.0, StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
}

func TestMinMax(t *testing.T) {
	_, ok := Min(nil)
	assert.False(t, ok)
	_, ok = Max(nil)
	assert.False(t, ok)

	lo, ok := Min([]float64{85, 92, 78, 90})
	assert.True(t, ok)
	assert.Equal(t, 78.0, lo)

	hi, ok := Max([]float64{85, 92, 78, 90})
	assert.True(t, ok)
	assert.Equal(t, 92.0, hi)
}

func TestSortByAverage(t *testing.T) {
	in := []model.Student{
		{ID: 1, Name: "none"},
		{ID: 2, Name: "low", Grades: []float64{50}},
		{ID: 3, Name: "high", Grades: []float64{90, 100}},
		{ID: 4, Name: "tie", Grades: []float64{50}},
	}

	got := SortByAverage(in)
	ids := make([]int, len(got))
	for i, s := range got {
		ids[i] = s.ID
	}
	assert.Equal(t, []int{3, 2, 4, 1}, ids)

	// input untouched
	assert.Equal(t, 1, in[0].ID)
}

func TestOverallAverage(t *testing.T) {
	assert.Equal(t, 0.0, OverallAverage(nil))
	assert.Equal(t, 0.0, OverallAverage([]model.Student{{Name: "a"}, {Name: "b"}}))
	assert.Equal(t, 75.0, OverallAverage([]model.Student{
		{Grades: []float64{50, 100}},
		{Grades: []float64{75}},
		{},
	}))
}
