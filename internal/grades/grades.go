// Package grades provides pure statistics over grade lists and student records.
package grades

import (
	"math"
	"sort"

	"github.com/rcliao/student-roster/internal/model"
)

// OutlierThreshold is the number of population standard deviations a grade
// must lie beyond the mean to count as an outlier.
const OutlierThreshold = 2.0

// Average returns the arithmetic mean of grades, or 0 when grades is empty.
func Average(grades []float64) float64 {
	if len(grades) == 0 {
		return 0
	}
	var sum float64
	for _, g := range grades {
		sum += g
	}
	return sum / float64(len(grades))
}

// ValidateGrade reports whether v lies in [MinGrade, MaxGrade].
func ValidateGrade(v float64) bool {
	return v >= model.MinGrade && v <= model.MaxGrade
}

var letterBands = []struct {
	min    float64
	letter string
}{
	{97, "A+"},
	{93, "A"},
	{90, "A-"},
	{87, "B+"},
	{83, "B"},
	{80, "B-"},
	{77, "C+"},
	{73, "C"},
	{70, "C-"},
	{67, "D+"},
	{63, "D"},
	{60, "D-"},
}

// LetterGrade maps a numeric average to its letter band.
func LetterGrade(avg float64) string {
	for _, b := range letterBands {
		if avg >= b.min {
			return b.letter
		}
	}
	return "F"
}

// StdDev returns the population standard deviation of grades, 0 when empty.
func StdDev(grades []float64) float64 {
	if len(grades) == 0 {
		return 0
	}
	mean := Average(grades)
	var variance float64
	for _, g := range grades {
		d := g - mean
		variance += d * d
	}
	return math.Sqrt(variance / float64(len(grades)))
}

// FindOutliers returns, in input order, the grades whose distance from the
// mean exceeds OutlierThreshold population standard deviations. Fewer than
// three grades never yield outliers.
func FindOutliers(grades []float64) []float64 {
	outliers := []float64{}
	if len(grades) < 3 {
		return outliers
	}

	mean := Average(grades)
	limit := OutlierThreshold * StdDev(grades)
	for _, g := range grades {
		if math.Abs(g-mean) > limit {
			outliers = append(outliers, g)
		}
	}
	return outliers
}

// Min returns the lowest grade, or false for an empty list.
func Min(grades []float64) (float64, bool) {
	if len(grades) == 0 {
		return 0, false
	}
	lowest := grades[0]
	for _, g := range grades[1:] {
		if g < lowest {
			lowest = g
		}
	}
	return lowest, true
}

// Max returns the highest grade, or false for an empty list.
func Max(grades []float64) (float64, bool) {
	if len(grades) == 0 {
		return 0, false
	}
	highest := grades[0]
	for _, g := range grades[1:] {
		if g > highest {
			highest = g
		}
	}
	return highest, true
}

// SortByAverage returns a new slice ordered by average grade, highest first.
// Students without grades sort as average 0. Equal averages keep input order.
func SortByAverage(students []model.Student) []model.Student {
	type keyed struct {
		student model.Student
		avg     float64
	}
	ks := make([]keyed, len(students))
	for i, s := range students {
		ks[i] = keyed{student: s, avg: Average(s.Grades)}
	}

	sort.SliceStable(ks, func(i, j int) bool {
		return ks[i].avg > ks[j].avg
	})

	out := make([]model.Student, len(ks))
	for i, k := range ks {
		out[i] = k.student
	}
	return out
}

// OverallAverage is the mean over every grade of every student, 0 when there
// are no grades at all.
func OverallAverage(students []model.Student) float64 {
	var sum float64
	var n int
	for _, s := range students {
		for _, g := range s.Grades {
			sum += g
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
