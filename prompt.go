package fxconvert

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxAttempts is the number of invalid inputs tolerated per field before the
// whole action is cancelled.
const maxAttempts = 3

var (
	// ErrTooManyAttempts cancels the in-progress action after a field
	// received maxAttempts invalid inputs.
	ErrTooManyAttempts = errors.New("too many invalid attempts")

	// ErrCancelled is the user explicitly backing out of the current action.
	ErrCancelled = errors.New("cancelled")

	// ErrInterrupted is an interactive interruption (Ctrl+C, closed input)
	// during a blocking read.
	ErrInterrupted = errors.New("interrupted")
)

// Prompter acquires one raw line of user input.
type Prompter interface {
	// ReadLine displays the prompt and returns the next input line, not
	// including the line terminator. It returns ErrInterrupted (possibly
	// wrapped) when the user aborts instead of answering.
	ReadLine(prompt string) (string, error)
}

// Field describes one bounded-retry input field: how to parse a raw line
// into a value, and what an empty line means.
type Field[T any] struct {
	// Prompt is displayed before each attempt.
	Prompt string

	// Parse validates a non-empty trimmed line and converts it. The
	// returned error text is shown to the user before the next attempt.
	Parse func(text string) (T, error)

	// OnEmpty, when set, resolves an empty line immediately without
	// consuming an attempt: return a default value, or ErrCancelled to
	// abandon the action. When nil, an empty line is just invalid input.
	OnEmpty func() (T, error)
}

// Ask runs the bounded-retry protocol for one field: up to maxAttempts
// invalid inputs, then ErrTooManyAttempts. Diagnostics are written to w.
//
// ErrCancelled and ErrInterrupted pass through to the caller, which is
// expected to abandon the whole action, not just this field.
func Ask[T any](w io.Writer, p Prompter, f Field[T]) (T, error) {
	var zero T
	for attempts := 0; attempts < maxAttempts; {
		line, err := p.ReadLine(f.Prompt)
		if err != nil {
			return zero, err
		}
		text := strings.TrimSpace(line)

		if text == "" {
			if f.OnEmpty != nil {
				return f.OnEmpty()
			}
			fmt.Fprintln(w, "[!] Input cannot be empty.")
			attempts++
			continue
		}

		v, err := f.Parse(text)
		if err != nil {
			fmt.Fprintf(w, "[!] %v\n", err)
			attempts++
			continue
		}
		return v, nil
	}
	fmt.Fprintln(w, "[!] Too many invalid attempts. Returning to main menu.")
	return zero, ErrTooManyAttempts
}
