package profile

import (
	"log/slog"

	"github.com/aarondl/opt/omit"

	"github.com/macropower/termprofile/pkg/color"
	"github.com/macropower/termprofile/pkg/scheme"
	"github.com/macropower/termprofile/pkg/settings"
)

// CreateTerminalSettings resolves the profile into concrete settings.
//
// If the profile names a color scheme found in schemes (exact match), the
// scheme's foreground, background and color table are used. Otherwise the
// profile's own colors are used, with defaults for unset ones. Directory
// and image paths are expanded from the environment. The profile is not
// modified.
func (p *Profile) CreateTerminalSettings(schemes []scheme.ColorScheme) settings.TerminalSettings {
	align, _ := p.backgroundImageAlignment.Get()
	stretch, _ := p.backgroundImageStretchMode.Get()
	scrollState, _ := p.scrollbarState.Get()

	ts := settings.TerminalSettings{
		ProfileGUID:    p.GUID(),
		ConnectionType: p.ConnectionType(),

		DefaultForeground: getOr(p.defaultForeground, color.DefaultForeground),
		DefaultBackground: getOr(p.defaultBackground, color.DefaultBackground),
		ColorTable:        p.colorTable,

		CursorColor:  p.cursorColor,
		CursorShape:  p.cursorShape,
		CursorHeight: p.cursorHeight,

		FontFace: p.fontFace,
		FontSize: p.fontSize,
		Padding:  p.padding,

		Commandline:   p.commandline,
		StartingTitle: getOr(p.tabTitle, p.name),

		HistorySize: p.historySize,
		SnapOnInput: p.snapOnInput,
		CloseOnExit: p.closeOnExit,
		ScrollState: scrollState,

		UseAcrylic:  p.useAcrylic,
		TintOpacity: p.acrylicOpacity,

		BackgroundImage:                    p.ExpandedBackgroundImagePath(),
		BackgroundImageOpacity:             getOr(p.backgroundImageOpacity, DefaultBackgroundImageOpacity),
		BackgroundImageStretchMode:         stretch,
		BackgroundImageHorizontalAlignment: align.Horizontal,
		BackgroundImageVerticalAlignment:   align.Vertical,

		IconPath: p.ExpandedIconPath(),
	}

	if dir, ok := p.startingDirectory.Get(); ok {
		ts.StartingDirectory = p.expander.StartingDirectory(dir)
	}

	if name, ok := p.schemeName.Get(); ok {
		if cs, found := scheme.Find(schemes, name); found {
			cs.Apply(&ts)
		} else {
			p.logger.Debug("color scheme not found, using profile colors",
				slog.String("profile", p.name),
				slog.String("scheme", name),
			)
		}
	}

	return ts
}

func getOr[T any](v omit.Val[T], fallback T) T {
	if got, ok := v.Get(); ok {
		return got
	}

	return fallback
}
