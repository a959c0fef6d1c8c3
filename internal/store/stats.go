package store

import "github.com/rcliao/student-roster/internal/grades"

// Stats holds roster statistics.
type Stats struct {
	TotalStudents  int            `json:"total_students"`
	GradedStudents int            `json:"graded_students"`
	TotalGrades    int            `json:"total_grades"`
	OverallAverage float64        `json:"overall_average"`
	Letters        map[string]int `json:"letters"`
	Outliers       []OutlierStats `json:"outliers,omitempty"`
}

// OutlierStats lists the outlying grades of one student.
type OutlierStats struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Outliers []float64 `json:"outliers"`
}

// Stats returns roster statistics. Letter counts cover graded students only.
func (r *Roster) Stats() Stats {
	students := r.All()

	st := Stats{
		TotalStudents:  len(students),
		OverallAverage: grades.OverallAverage(students),
		Letters:        map[string]int{},
	}

	for _, s := range students {
		st.TotalGrades += len(s.Grades)
		if len(s.Grades) == 0 {
			continue
		}
		st.GradedStudents++
		st.Letters[grades.LetterGrade(grades.Average(s.Grades))]++

		if out := grades.FindOutliers(s.Grades); len(out) > 0 {
			st.Outliers = append(st.Outliers, OutlierStats{ID: s.ID, Name: s.Name, Outliers: out})
		}
	}

	return st
}
