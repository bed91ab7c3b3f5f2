package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
)

var errInvalidArgument = errors.New("invalid argument")

// SourceError is an error with an annotated excerpt of the document it
// refers to.
type SourceError struct {
	Err    error
	Source string
}

func (e *SourceError) Error() string {
	if e.Source == "" {
		return e.Err.Error()
	}

	return e.Err.Error() + "\n\n" + e.Source
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func ErrorHandler(w io.Writer, styles fang.Styles, err error) {
	mustN(fmt.Fprintln(w, styles.ErrorHeader.String()))

	var srcErr *SourceError
	if errors.As(err, &srcErr) && srcErr.Source != "" {
		mustN(fmt.Fprintln(w, lipgloss.NewStyle().MarginLeft(2).Render(srcErr.Err.Error())))
		mustN(fmt.Fprintln(w))
		mustN(fmt.Fprintln(w, lipgloss.NewStyle().MarginLeft(2).Render(strings.TrimRight(srcErr.Source, "\n"))))
	} else {
		mustN(fmt.Fprintln(w, lipgloss.NewStyle().MarginLeft(2).Render(err.Error())))
	}

	mustN(fmt.Fprintln(w))
	if isUsageError(err) {
		mustN(fmt.Fprintln(w, lipgloss.JoinHorizontal(
			lipgloss.Left,
			styles.ErrorText.UnsetWidth().Render("Try"),
			styles.Program.Flag.Render("--help"),
			styles.ErrorText.UnsetWidth().UnsetMargins().UnsetTransform().PaddingLeft(1).Render("for usage."),
		)))
		mustN(fmt.Fprintln(w))
	}
}

// XXX: this is a hack to detect usage errors.
// See: https://github.com/spf13/cobra/pull/2266
func isUsageError(err error) bool {
	if errors.Is(err, errInvalidArgument) {
		return true
	}

	s := err.Error()
	for _, prefix := range []string{
		"flag needs an argument:",
		"unknown flag:",
		"unknown shorthand flag:",
		"unknown command",
		"invalid argument",
		"accepts ",
		"requires at least",
		"if any flags in the group",
	} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func mustN(_ int, err error) {
	must(err)
}
