// Package highlight renders JSON and YAML with terminal syntax highlighting.
package highlight

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Languages accepted by [Highlighter.Render].
const (
	JSON = "json"
	YAML = "yaml"
)

// Highlighter renders source code with a chroma formatter and style.
type Highlighter struct {
	formatter chroma.Formatter
	style     *chroma.Style
}

// HighlighterOpt is a functional option for configuring a [Highlighter].
type HighlighterOpt func(*Highlighter)

// WithFormatter sets the chroma formatter by name, e.g. "terminal256".
// Unknown names fall back to chroma's default formatter.
func WithFormatter(name string) HighlighterOpt {
	return func(h *Highlighter) {
		h.formatter = formatters.Get(name)
	}
}

// WithStyle sets the chroma style by name, e.g. "github-dark". Unknown
// names fall back to chroma's default style.
func WithStyle(name string) HighlighterOpt {
	return func(h *Highlighter) {
		h.style = styles.Get(name)
	}
}

// New creates a [Highlighter]. Without options it does not add any
// escape sequences.
func New(opts ...HighlighterOpt) *Highlighter {
	h := &Highlighter{
		formatter: formatters.NoOp,
		style:     styles.Fallback,
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// ForWriter creates a [Highlighter] suited to w. Output is only colored
// when w is a terminal, using the richest formatter its color profile
// supports and a style matching the terminal background.
func ForWriter(w io.Writer) *Highlighter {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) { //nolint:gosec // G115: file descriptors fit in int.
		return New()
	}

	out := termenv.NewOutput(w)

	var formatter string

	switch out.EnvColorProfile() {
	case termenv.TrueColor:
		formatter = "terminal16m"
	case termenv.ANSI256:
		formatter = "terminal256"
	case termenv.ANSI:
		formatter = "terminal8"
	default:
		return New()
	}

	style := "github"
	if out.HasDarkBackground() {
		style = "github-dark"
	}

	return New(WithFormatter(formatter), WithStyle(style))
}

// Render highlights src as lang, which is [JSON], [YAML] or any language
// chroma knows.
func (h *Highlighter) Render(lang, src string) (string, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, src)
	if err != nil {
		return "", fmt.Errorf("lexer tokenize: %w", err)
	}

	buf := &bytes.Buffer{}

	err = h.formatter.Format(buf, h.style, iterator)
	if err != nil {
		return "", fmt.Errorf("format: %w", err)
	}

	return buf.String(), nil
}
