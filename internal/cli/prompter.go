package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user for input on the terminal. All reads respect
// context cancellation so an interrupt mid-prompt does not hang the
// process.
type Prompter struct {
	reader *NonBlockingReader
	writer io.Writer
	stdin  *os.File
}

// NewPrompter creates a prompter on the given streams. A nil stdin or
// writer falls back to the process's own.
func NewPrompter(stdin *os.File, writer io.Writer) *Prompter {
	if stdin == nil {
		stdin = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Prompter{
		reader: NewNonBlockingReader(stdin),
		writer: writer,
		stdin:  stdin,
	}
}

// Line prompts for one line of input.
func (p *Prompter) Line(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.writer, FormatPrompt(prompt))
	return p.reader.ReadLine(ctx)
}

// Password prompts for a secret without echoing it. When stdin is not a
// terminal (tests, pipes) it degrades to a plain line read.
func (p *Prompter) Password(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.writer, FormatPrompt(prompt))

	fd := int(p.stdin.Fd())
	if !term.IsTerminal(fd) {
		return p.reader.ReadLine(ctx)
	}

	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)
	go func() {
		raw, err := term.ReadPassword(fd)
		resultCh <- result{value: string(raw), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-resultCh:
		fmt.Fprintln(p.writer)
		return res.value, res.err
	}
}

// Confirm asks a yes/no question and returns true only on an explicit
// yes. Empty input takes the default.
func (p *Prompter) Confirm(ctx context.Context, prompt string, defaultYes bool) (bool, error) {
	suffix := " [y/N]"
	if defaultYes {
		suffix = " [Y/n]"
	}
	fmt.Fprint(p.writer, FormatPrompt(prompt+suffix))

	line, err := p.reader.ReadLine(ctx)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
