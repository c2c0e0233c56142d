// Package prompt asks the questions of the interactive scenarios on a
// line-oriented reader, usually os.Stdin.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// ErrNoInput is returned when the input ends before a valid answer is read.
var ErrNoInput = errors.New("no input")

var (
	questionColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	invalidColor  = color.New(color.FgYellow).SprintFunc()
)

// Validator rejects an answer with an error explaining what is expected.
type Validator func(answer string) error

// NotEmpty rejects blank answers.
func NotEmpty() Validator {
	return func(answer string) error {
		if strings.TrimSpace(answer) == "" {
			return errors.New("enter a value")
		}
		return nil
	}
}

// InIntRange rejects answers that are not integers in [lower, upper].
func InIntRange(lower, upper int) Validator {
	return func(answer string) error {
		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			return fmt.Errorf("%q is not a number", answer)
		}
		if n < lower || n > upper {
			return fmt.Errorf("enter a number between %d and %d", lower, upper)
		}
		return nil
	}
}

//go:generate mockgen -destination=../../mocks/promptmock/prompt.go -package=promptmock . Questioner
type Questioner interface {
	Ask(question string, validators ...Validator) (string, error)
	AskBool(question, expected string) (bool, error)
	AskInt(question string, validators ...Validator) (int, error)
	AskChoice(question string, choices []string) (int, error)
}

// Reader asks questions on out and reads one answer per line from in.
// Invalid answers are reported and the question is asked again.
type Reader struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewScanner(in), out: out}
}

// NewStdin returns a Reader over the current os.Stdin and os.Stdout.
func NewStdin() *Reader {
	return NewReader(os.Stdin, os.Stdout)
}

// Ask returns the first answer every validator accepts, trimmed of
// surrounding spaces.
func (r *Reader) Ask(question string, validators ...Validator) (string, error) {
	for {
		fmt.Fprint(r.out, questionColor(question)+" ")
		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			if err := r.in.Err(); err != nil {
				return "", fmt.Errorf("r.in.Scan: %w", err)
			}
			return "", ErrNoInput
		}
		answer := strings.TrimSpace(r.in.Text())

		valid := true
		for _, v := range validators {
			if err := v(answer); err != nil {
				fmt.Fprintln(r.out, invalidColor(err.Error()))
				valid = false
				break
			}
		}
		if valid {
			return answer, nil
		}
	}
}

// AskBool reports whether the answer equals expected, ignoring case.
func (r *Reader) AskBool(question, expected string) (bool, error) {
	answer, err := r.Ask(question)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, expected), nil
}

// AskInt asks until the answer is an integer accepted by validators.
func (r *Reader) AskInt(question string, validators ...Validator) (int, error) {
	isInt := func(answer string) error {
		if _, err := strconv.Atoi(answer); err != nil {
			return fmt.Errorf("%q is not a number", answer)
		}
		return nil
	}
	answer, err := r.Ask(question, append([]Validator{isInt}, validators...)...)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(answer)
}

// AskChoice lists choices numbered from 1 and returns the zero-based index
// of the one picked.
func (r *Reader) AskChoice(question string, choices []string) (int, error) {
	if len(choices) == 0 {
		return 0, errors.New("no choices")
	}
	fmt.Fprintln(r.out, questionColor(question))
	for i, c := range choices {
		fmt.Fprintf(r.out, "\t%d. %s\n", i+1, c)
	}
	n, err := r.AskInt(fmt.Sprintf("Enter a choice (1-%d):", len(choices)), InIntRange(1, len(choices)))
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}
