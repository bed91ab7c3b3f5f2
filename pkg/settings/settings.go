package settings

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mattn/go-shellwords"

	"github.com/macropower/termprofile/pkg/color"
)

// ErrEmptyCommandline is returned by [TerminalSettings.CommandArgs] when
// there is nothing to run.
var ErrEmptyCommandline = errors.New("empty commandline")

// TerminalSettings is the fully resolved configuration of a terminal
// session. Every field holds a concrete value.
type TerminalSettings struct {
	ProfileGUID    uuid.UUID `json:"profileGuid"`
	ConnectionType uuid.UUID `json:"connectionType"`

	DefaultForeground color.Color `json:"defaultForeground"`
	DefaultBackground color.Color `json:"defaultBackground"`
	ColorTable        color.Table `json:"colorTable"`

	CursorColor  color.Color `json:"cursorColor"`
	CursorShape  CursorStyle `json:"cursorShape"`
	CursorHeight uint32      `json:"cursorHeight"`

	FontFace string `json:"fontFace"`
	FontSize int32  `json:"fontSize"`
	Padding  string `json:"padding"`

	Commandline       string `json:"commandline"`
	StartingDirectory string `json:"startingDirectory"`
	StartingTitle     string `json:"startingTitle"`

	HistorySize int32          `json:"historySize"`
	SnapOnInput bool           `json:"snapOnInput"`
	CloseOnExit bool           `json:"closeOnExit"`
	ScrollState ScrollbarState `json:"scrollState"`

	UseAcrylic  bool    `json:"useAcrylic"`
	TintOpacity float64 `json:"tintOpacity"`

	BackgroundImage                    string              `json:"backgroundImage"`
	BackgroundImageOpacity             float64             `json:"backgroundImageOpacity"`
	BackgroundImageStretchMode         Stretch             `json:"backgroundImageStretchMode"`
	BackgroundImageHorizontalAlignment HorizontalAlignment `json:"backgroundImageHorizontalAlignment"`
	BackgroundImageVerticalAlignment   VerticalAlignment   `json:"backgroundImageVerticalAlignment"`

	IconPath string `json:"icon"`
}

// SetColorTableEntry sets entry i of the color table. Out of range indexes
// are ignored.
func (ts *TerminalSettings) SetColorTableEntry(i int, c color.Color) {
	if i < 0 || i >= len(ts.ColorTable) {
		return
	}

	ts.ColorTable[i] = c
}

// CommandArgs splits the commandline into an argument vector using POSIX
// shell quoting rules. Environment variables and backticks are not
// evaluated.
func (ts TerminalSettings) CommandArgs() ([]string, error) {
	p := shellwords.NewParser()
	p.ParseEnv = false
	p.ParseBacktick = false

	args, err := p.Parse(ts.Commandline)
	if err != nil {
		return nil, fmt.Errorf("parse commandline %q: %w", ts.Commandline, err)
	}
	if len(args) == 0 {
		return nil, ErrEmptyCommandline
	}

	return args, nil
}
