package repos

import (
	"strings"
	"testing"
)

// The priority column is varchar, so ordering must go through the rank
// expression. Plain DESC would put WARNING ahead of CRITICAL.
func TestPriorityRankOrdersBySeverity(t *testing.T) {
	for _, want := range []string{
		"CASE recommendation.priority",
		"WHEN 'CRITICAL' THEN 3",
		"WHEN 'WARNING' THEN 2",
		"ELSE 1",
	} {
		if !strings.Contains(priorityRankSQL, want) {
			t.Fatalf("rank expression missing %q: %s", want, priorityRankSQL)
		}
	}
}
