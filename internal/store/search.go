package store

import (
	"strings"

	"github.com/rcliao/student-roster/internal/model"
)

// Search finds students whose name contains the query substring, ignoring
// case, in insertion order. An empty query matches everyone.
func (r *Roster) Search(p SearchParams) []model.Student {
	query := strings.ToLower(strings.TrimSpace(p.Query))

	r.mu.Lock()
	defer r.mu.Unlock()

	results := []model.Student{}
	for _, s := range r.students {
		if p.Limit > 0 && len(results) >= p.Limit {
			break
		}
		if strings.Contains(strings.ToLower(s.Name), query) {
			results = append(results, s.Clone())
		}
	}
	return results
}
