package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/phwrscr1pt/fxconvert"
)

// consolePrompter reads input lines from a terminal, turning Ctrl+C and a
// closed input stream into fxconvert.ErrInterrupted so the in-progress
// action unwinds instead of the process dying mid-read.
type consolePrompter struct {
	w     io.Writer
	reads chan readResult
	sig   chan os.Signal
}

type readResult struct {
	line string
	err  error
}

// newConsolePrompter starts reading r line by line in the background and
// listens for the interrupt signal.
func newConsolePrompter(w io.Writer, r io.Reader) *consolePrompter {
	p := &consolePrompter{
		w:     w,
		reads: make(chan readResult),
		sig:   make(chan os.Signal, 1),
	}
	signal.Notify(p.sig, os.Interrupt)

	go func() {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if err != nil {
				// deliver whatever was read, then no more lines
				p.reads <- readResult{line, err}
				close(p.reads)
				return
			}
			p.reads <- readResult{line, nil}
		}
	}()
	return p
}

// ReadLine displays the prompt and blocks for the next line or an interrupt.
func (p *consolePrompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.w, prompt)
	select {
	case r, ok := <-p.reads:
		if !ok || r.err != nil {
			return "", fxconvert.ErrInterrupted
		}
		return strings.TrimSuffix(strings.TrimSuffix(r.line, "\n"), "\r"), nil
	case <-p.sig:
		fmt.Fprintln(p.w)
		return "", fxconvert.ErrInterrupted
	}
}

// Close detaches the signal handler. Further Ctrl+C get default handling.
func (p *consolePrompter) Close() {
	signal.Stop(p.sig)
}

var _ fxconvert.Prompter = (*consolePrompter)(nil)
