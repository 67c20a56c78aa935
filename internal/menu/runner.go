package menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/dsa-lab/internal/console"
	"github.com/rs/zerolog"
)

const invalidInput = "Invalid input! Please enter a number."

type Runner struct {
	in     IntReader
	out    io.Writer
	header func(string) string
	logger *zerolog.Logger
}

func NewRunner(in IntReader, out io.Writer, styled bool, logger *zerolog.Logger) *Runner {
	return &Runner{
		in:     in,
		out:    out,
		header: newHeaderStyle(out, styled),
		logger: logger,
	}
}

// Run shows the program's menu until the exit entry is chosen or the input
// ends. Both are a normal finish and return nil.
func (r *Runner) Run(ctx context.Context, p *Program) error {
	err := r.loop(ctx, p)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (r *Runner) loop(ctx context.Context, p *Program) error {
	logger := r.logger.With().
		Str("program", p.Name).
		Str("session_id", uuid.NewString()).
		Logger()
	logger.Debug().Int("options", len(p.Options)).Msg("menu session started")

	session := &Session{
		ctx:    ctx,
		in:     r.in,
		out:    r.out,
		runner: r,
	}
	exitChoice := len(p.Options) + 1

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.printMenu(p)

		choice, err := r.in.ReadInt(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Debug().Msg("input closed")
				return io.EOF
			}
			if errors.Is(err, console.ErrNotANumber) {
				fmt.Fprintln(r.out, invalidInput)
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("failed to read menu choice: %w", err)
		}

		if choice == exitChoice {
			fmt.Fprintln(r.out, "Exiting program...")
			logger.Debug().Msg("menu session finished")
			return nil
		}

		if choice < 1 || choice > len(p.Options) {
			logger.Debug().Int("choice", choice).Msg("invalid choice")
			fmt.Fprintln(r.out, p.invalidChoice())
			continue
		}

		option := p.Options[choice-1]
		logger.Debug().Int("choice", choice).Str("option", option.Label).Msg("dispatching")

		if err := option.Action(session); err != nil {
			switch {
			case errors.Is(err, io.EOF):
				return io.EOF
			case ctx.Err() != nil:
				logger.Debug().Str("option", option.Label).Msg("operation interrupted")
				return ctx.Err()
			case errors.Is(err, console.ErrNotANumber):
				fmt.Fprintln(r.out, invalidInput)
			default:
				logger.Error().Err(err).Str("option", option.Label).Msg("operation failed")
				return fmt.Errorf("failed to run %q: %w", option.Label, err)
			}
		}
	}
}

func (r *Runner) printMenu(p *Program) {
	fmt.Fprintf(r.out, "\n%s\n", r.header(fmt.Sprintf("--- %s ---", p.Title)))
	for i, option := range p.Options {
		fmt.Fprintf(r.out, "%d. %s\n", i+1, option.Label)
	}
	fmt.Fprintf(r.out, "%d. Exit\n", len(p.Options)+1)
	fmt.Fprint(r.out, "Enter your choice: ")
}
