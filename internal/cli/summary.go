package cli

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/macropower/termprofile/pkg/color"
	"github.com/macropower/termprofile/pkg/guid"
	"github.com/macropower/termprofile/pkg/settings"
)

var (
	summaryLabelStyle = lipgloss.NewStyle().Bold(true).Width(12)
	summaryDimStyle   = lipgloss.NewStyle().Faint(true)
)

func swatch(c color.Color) string {
	return lipgloss.NewStyle().Background(c).Render("  ")
}

func paletteRow(table color.Table) string {
	var b strings.Builder
	for _, c := range table {
		b.WriteString(swatch(c))
	}

	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return summaryDimStyle.Render("(none)")
	}

	return s
}

// writeSummary writes a short, human readable description of ts.
func writeSummary(w io.Writer, ts settings.TerminalSettings) error {
	cursor := ts.CursorShape.String()
	if ts.CursorShape == settings.CursorStyleVintage {
		cursor = fmt.Sprintf("%s (%d%%)", cursor, ts.CursorHeight)
	}

	background := "solid"
	if ts.UseAcrylic {
		background = fmt.Sprintf("acrylic, %.0f%% opacity", ts.TintOpacity*100)
	}
	if ts.BackgroundImage != "" {
		background += fmt.Sprintf("; image %s (%s, %s-%s, %.0f%%)",
			ts.BackgroundImage,
			ts.BackgroundImageStretchMode,
			ts.BackgroundImageVerticalAlignment,
			ts.BackgroundImageHorizontalAlignment,
			ts.BackgroundImageOpacity*100,
		)
	}

	onExit := "keep open"
	if ts.CloseOnExit {
		onExit = "close"
	}

	rows := [][2]string{
		{"Title", ts.StartingTitle},
		{"GUID", guid.Format(ts.ProfileGUID)},
		{"Command", orNone(ts.Commandline)},
		{"Directory", orNone(ts.StartingDirectory)},
		{"Font", fmt.Sprintf("%s, %dpt", ts.FontFace, ts.FontSize)},
		{"Padding", ts.Padding},
		{"Cursor", fmt.Sprintf("%s %s %s", cursor, swatch(ts.CursorColor), ts.CursorColor)},
		{"Colors", fmt.Sprintf("%s %s on %s %s",
			swatch(ts.DefaultForeground), ts.DefaultForeground,
			swatch(ts.DefaultBackground), ts.DefaultBackground,
		)},
		{"Palette", paletteRow(ts.ColorTable)},
		{"Background", background},
		{"History", humanize.Comma(int64(ts.HistorySize)) + " lines"},
		{"Scrollbar", ts.ScrollState.String()},
		{"On exit", onExit},
		{"Icon", orNone(ts.IconPath)},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, summaryLabelStyle.Render(row[0]), row[1]))
	}

	_, err := lipgloss.Fprintln(w, strings.Join(lines, "\n"))
	if err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}
