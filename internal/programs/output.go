package programs

import (
	"github.com/povarna/generative-ai-agents/dsa-lab/internal/menu"
)

// printValues writes label followed by each value and a trailing space, then
// ends the line.
func printValues(s *menu.Session, label string, values []int) {
	s.Printf("%s", label)
	for _, v := range values {
		s.Printf("%d ", v)
	}
	s.Println()
}
