package cli

import (
	"image/color"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/exp/charmtone"

	"github.com/macropower/termprofile/pkg/config"
	"github.com/macropower/termprofile/pkg/scheme"
)

const (
	// DefaultCLIScheme is the color scheme used for help and error output.
	DefaultCLIScheme = "One Half Dark"

	cliSchemeEnv = "TERMPROFILE_CLI_SCHEME"
)

// Table indexes used by [SchemeColorScheme].
const (
	idxBlack       = 0
	idxRed         = 1
	idxCyan        = 6
	idxWhite       = 7
	idxBrightBlack = 8
	idxBrightBlue  = 12
	idxBrightCyan  = 14
	idxBrightWhite = 15
)

// ColorSchemeFunc styles help and error output with a color scheme from the
// catalog, named by $TERMPROFILE_CLI_SCHEME. Otherwise the default scheme is
// used.
func ColorSchemeFunc(c lipgloss.LightDarkFunc) fang.ColorScheme {
	name := DefaultCLIScheme
	if v, ok := os.LookupEnv(cliSchemeEnv); ok && v != "" {
		name = v
	}

	schemes, err := config.LoadSchemes("")
	if err != nil {
		schemes = scheme.Builtin()
	}

	cs, ok := scheme.Find(schemes, name)
	if !ok {
		cs, _ = scheme.Find(scheme.Builtin(), DefaultCLIScheme)
	}

	return SchemeColorScheme(*cs, c)
}

// SchemeColorScheme maps a terminal color scheme onto fang's styles.
func SchemeColorScheme(cs scheme.ColorScheme, c lipgloss.LightDarkFunc) fang.ColorScheme {
	t := cs.Table

	return fang.ColorScheme{
		Base:           c(t[idxBlack], t[idxWhite]),
		Title:          t[idxBrightBlue],
		Codeblock:      c(charmtone.Salt, lipgloss.Color("#2F2E36")),
		Program:        t[idxBrightCyan],
		Command:        t[idxBrightCyan],
		DimmedArgument: t[idxBrightBlack],
		Comment:        t[idxBrightBlack],
		Flag:           t[idxBrightCyan],
		Argument:       c(t[idxBlack], t[idxWhite]),
		Description:    c(t[idxBlack], t[idxWhite]),
		FlagDefault:    t[idxCyan],
		QuotedString:   c(t[idxBlack], t[idxWhite]),
		ErrorHeader: [2]color.Color{
			t[idxBrightWhite],
			t[idxRed],
		},
	}
}
