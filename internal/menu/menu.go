package menu

import (
	"context"
	"fmt"
	"io"
)

const defaultInvalidChoice = "Invalid choice! Try again."

// Action runs one menu entry against the program's structure.
type Action func(s *Session) error

type Option struct {
	Label  string
	Action Action
}

// Program is one menu-driven exercise. The exit entry is appended after
// Options by the runner.
type Program struct {
	Name          string
	Title         string
	Options       []Option
	InvalidChoice string
}

func (p *Program) invalidChoice() string {
	if p.InvalidChoice == "" {
		return defaultInvalidChoice
	}
	return p.InvalidChoice
}

// Session is what an Action sees: the console and a way to start a nested
// program.
type Session struct {
	ctx    context.Context
	in     IntReader
	out    io.Writer
	runner *Runner
}

func (s *Session) Printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) Println(args ...any) {
	fmt.Fprintln(s.out, args...)
}

// Ask writes prompt and reads one integer.
func (s *Session) Ask(prompt string) (int, error) {
	fmt.Fprint(s.out, prompt)
	return s.in.ReadInt(s.ctx)
}

// Run starts p inside the current session and returns when p exits.
// End of input is passed back as io.EOF so the caller stops as well.
func (s *Session) Run(p *Program) error {
	return s.runner.loop(s.ctx, p)
}
