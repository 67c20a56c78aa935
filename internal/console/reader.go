package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
)

var ErrNotANumber = errors.New("not a number")

type scanResult struct {
	token string
	err   error
}

// Reader pulls whitespace separated integers from an input stream, the way
// scanf("%d") does for the interactive menus.
type Reader struct {
	scanner *bufio.Scanner
	logger  *zerolog.Logger

	start   sync.Once
	results chan scanResult
}

func NewReader(r io.Reader, logger *zerolog.Logger) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	return &Reader{
		scanner: scanner,
		logger:  logger,
		results: make(chan scanResult),
	}
}

// scan runs for the lifetime of the input. A token is handed over only when
// a ReadInt call takes it, so a cancelled read loses nothing.
func (r *Reader) scan() {
	defer close(r.results)

	for r.scanner.Scan() {
		r.results <- scanResult{token: r.scanner.Text()}
	}
	if err := r.scanner.Err(); err != nil {
		r.results <- scanResult{err: err}
	}
}

// ReadInt returns the next integer token. A token that is not an integer is
// consumed and reported as ErrNotANumber; io.EOF marks the end of input.
// A cancelled ctx ends a blocked read with ctx.Err().
func (r *Reader) ReadInt(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.start.Do(func() { go r.scan() })

	var res scanResult
	var ok bool
	select {
	case <-ctx.Done():
		r.logger.Debug().Err(ctx.Err()).Msg("read interrupted")
		return 0, ctx.Err()
	case res, ok = <-r.results:
	}

	if !ok {
		return 0, io.EOF
	}
	if res.err != nil {
		return 0, fmt.Errorf("failed to read input: %w", res.err)
	}

	n, err := strconv.Atoi(res.token)
	if err != nil {
		r.logger.Warn().Str("token", res.token).Msg("Discarding non-numeric input")
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, res.token)
	}

	return n, nil
}
