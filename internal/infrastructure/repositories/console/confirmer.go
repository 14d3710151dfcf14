package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/rios0rios0/packcheck/internal/domain/repositories"
)

// StdinConfirmer asks yes/no questions on the terminal. An empty answer means yes.
type StdinConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStdinConfirmer() repositories.Confirmer {
	return NewStdinConfirmerWithIO(os.Stdin, color.Output)
}

func NewStdinConfirmerWithIO(in io.Reader, out io.Writer) *StdinConfirmer {
	return &StdinConfirmer{in: bufio.NewReader(in), out: out}
}

func (it *StdinConfirmer) Confirm(question string) (bool, error) {
	for {
		fmt.Fprintf(it.out, "%s [y/n] (y): ", question)
		line, err := it.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("failed to read answer: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "":
			// closed input declines instead of looping
			return !errors.Is(err, io.EOF), nil
		}
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		fmt.Fprintln(it.out, "Please answer y or n.")
	}
}
