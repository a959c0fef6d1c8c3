package grades

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rcliao/student-roster/internal/model"
)

const separator = "------------------------------"

// FormatGrade renders a grade without trailing zeros (85, 87.5).
func FormatGrade(g float64) string {
	return strconv.FormatFloat(g, 'f', -1, 64)
}

// JoinGrades renders grades comma-separated in stored order.
func JoinGrades(grades []float64) string {
	parts := make([]string, len(grades))
	for i, g := range grades {
		parts[i] = FormatGrade(g)
	}
	return strings.Join(parts, ", ")
}

// FormatSummary renders the short display block for one student.
func FormatSummary(s model.Student) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Student: %s\n", s.Name)
	fmt.Fprintf(&b, "Age: %d\n", s.Age)

	if len(s.Grades) > 0 {
		fmt.Fprintf(&b, "Grades: %s\n", JoinGrades(s.Grades))
		fmt.Fprintf(&b, "Average: %.2f\n", Average(s.Grades))
	} else {
		b.WriteString("No grades recorded\n")
	}

	b.WriteString(separator + "\n")
	return b.String()
}

// GenerateReport renders the detailed report for one student. The statistics
// block is omitted when the student has no grades.
func GenerateReport(s model.Student) string {
	var b strings.Builder
	b.WriteString("STUDENT REPORT\n")
	b.WriteString("==============\n")
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "Age: %d\n", s.Age)
	fmt.Fprintf(&b, "Student ID: %d\n\n", s.ID)

	if len(s.Grades) == 0 {
		b.WriteString("No grades available.\n")
		return b.String()
	}

	avg := Average(s.Grades)
	best, _ := Max(s.Grades)
	worst, _ := Min(s.Grades)

	fmt.Fprintf(&b, "Grades: %s\n", JoinGrades(s.Grades))
	fmt.Fprintf(&b, "Average: %.2f\n", avg)
	fmt.Fprintf(&b, "Letter Grade: %s\n", LetterGrade(avg))
	fmt.Fprintf(&b, "Best Grade: %s\n", FormatGrade(best))
	fmt.Fprintf(&b, "Worst Grade: %s\n", FormatGrade(worst))
	return b.String()
}
