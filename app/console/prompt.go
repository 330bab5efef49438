package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks questions and reads answers line by line.
// Input is scanned in a separate goroutine, so that a pending
// prompt can be abandoned when the context is canceled.
type Prompter struct {
	out   io.Writer
	lines <-chan string
}

// NewPrompter makes a new Prompter and starts scanning the input.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	lines := make(chan string)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()

	return &Prompter{out: out, lines: lines}
}

// ReadLine prints the prompt, if any, and waits for the next line of input.
// Returns io.EOF when the input is exhausted.
func (p *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	if prompt != "" {
		if _, err := fmt.Fprintln(p.out, prompt); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// ReadInt asks for a number until the answer parses as an integer.
func (p *Prompter) ReadInt(ctx context.Context, prompt string) (int, error) {
	for {
		line, err := p.ReadLine(ctx, prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}

		if _, err = fmt.Fprintln(p.out, "Please enter a number."); err != nil {
			return 0, fmt.Errorf("write prompt: %w", err)
		}
	}
}
