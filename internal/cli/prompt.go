package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"expensetracker/internal/core"
)

// Prompter reads one line of input per question.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

// Ask prints label and returns the next input line. It returns io.EOF once
// input is exhausted.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// askValid asks until parse accepts the answer. Only read errors end the loop.
func askValid[T any](p *Prompter, label string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := p.Ask(label)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, retryMessage(err))
	}
}

func retryMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidDate):
		return "Wait a second... that date doesn't exist. Let's try again."
	case errors.Is(err, core.ErrInvalidAmount):
		return "Hey! That's not an amount!"
	case errors.Is(err, core.ErrEmptyCategory):
		return "Please enter a category."
	default:
		return "Please select an appropriate value."
	}
}

func parseUsername(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty name", core.ErrValidation)
	}
	return s, nil
}

func parseYesNo(s string) (bool, error) {
	choice, err := core.ParseChoice(s, "y", "n")
	return choice == "y", err
}
