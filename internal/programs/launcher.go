package programs

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/dsa-lab/internal/menu"
)

// Launcher offers every entry as a menu option. Each pick starts the
// exercise with a fresh structure; its exit returns to this menu.
func Launcher(entries []Entry, settings Settings) *menu.Program {
	options := make([]menu.Option, 0, len(entries))
	for _, e := range entries {
		options = append(options, menu.Option{
			Label: e.Short,
			Action: func(s *menu.Session) error {
				p, err := e.Build(settings)
				if err != nil {
					return fmt.Errorf("failed to build %s: %w", e.Name, err)
				}
				return s.Run(p)
			},
		})
	}

	return &menu.Program{
		Name:    "launcher",
		Title:   "DATA STRUCTURES LAB",
		Options: options,
	}
}
