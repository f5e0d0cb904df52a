package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const quitCommand = "q"

// Console talks to the players over a line based text stream.
type Console struct {
	logger *slog.Logger
	out    io.Writer

	lines chan string
	done  chan struct{}
	stop  sync.Once
}

// New - starts reading in on a background goroutine so prompts can honour context cancellation.
func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	console := &Console{
		logger: logger.With("component", "console"),
		out:    out,

		lines: make(chan string),
		done:  make(chan struct{}),
	}

	go console.scan(in)

	return console
}

// Close - stops handing lines over; a reader blocked inside in is released only when in returns.
func (that *Console) Close() {
	that.stop.Do(func() {
		close(that.done)
	})
}

func (that *Console) scan(in io.Reader) {
	defer close(that.lines)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case that.lines <- scanner.Text():
		case <-that.done:
			return
		}
	}

	if err := scanner.Err(); err != nil {
		that.logger.Error("failed to read input", "error", err)
	}
}

// Greet - prints the welcome banner and the keypad layout.
func (that *Console) Greet() {
	that.printf("Welcome to Tic Tac Toe!\n")
	that.printf("Positions are numbered like this:\n")
	that.printf(" 1 | 2 | 3\n-----------\n 4 | 5 | 6\n-----------\n 7 | 8 | 9\n\n")
}

// ask - prints question and returns the trimmed answer; "q" becomes ErrQuit.
// Quitting or a canceled ctx closes the console.
func (that *Console) ask(ctx context.Context, question string) (string, error) {
	select {
	case <-that.done:
		return "", io.EOF
	default:
	}

	that.printf("%s", question)

	select {
	case <-ctx.Done():
		that.Close()
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}

		answer := strings.TrimSpace(line)
		if strings.EqualFold(answer, quitCommand) {
			that.printf("\nThanks for playing! Goodbye!\n")
			that.Close()
			return "", apperror.ErrQuit
		}

		return answer, nil
	}
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
