package profile

import (
	"log/slog"

	"github.com/aarondl/opt/omit"
	"github.com/google/uuid"

	"github.com/macropower/termprofile/pkg/color"
	"github.com/macropower/termprofile/pkg/expand"
	"github.com/macropower/termprofile/pkg/guid"
	"github.com/macropower/termprofile/pkg/settings"
)

// Defaults for fields that always hold a value.
const (
	DefaultName           = "Default"
	DefaultFontFace       = "Consolas"
	DefaultFontSize       = 12
	DefaultHistorySize    = 9001
	DefaultCursorHeight   = 25
	DefaultAcrylicOpacity = 0.5
	DefaultPadding        = "8, 8, 8, 8"

	// DefaultBackgroundImageOpacity applies when a background image is set
	// without an opacity.
	DefaultBackgroundImageOpacity = 1.0
)

// Profile is a single set of terminal settings.
//
// The zero value is not usable; create profiles with [New], [NewWithGUID]
// or [FromJSON]. A Profile must not be mutated while it is being resolved.
type Profile struct {
	guid           omit.Val[uuid.UUID]
	connectionType omit.Val[uuid.UUID]
	name           string

	schemeName        omit.Val[string]
	defaultForeground omit.Val[color.Color]
	defaultBackground omit.Val[color.Color]
	colorTable        color.Table
	tabTitle          omit.Val[string]

	cursorColor  color.Color
	cursorHeight uint32
	cursorShape  settings.CursorStyle

	fontFace string
	fontSize int32
	padding  string

	commandline       string
	startingDirectory omit.Val[string]
	historySize       int32
	snapOnInput       bool
	closeOnExit       bool
	useAcrylic        bool
	acrylicOpacity    float64
	scrollbarState    omit.Val[settings.ScrollbarState]

	backgroundImage            omit.Val[string]
	backgroundImageOpacity     omit.Val[float64]
	backgroundImageStretchMode omit.Val[settings.Stretch]
	backgroundImageAlignment   omit.Val[settings.Alignment]

	icon omit.Val[string]

	expander *expand.Expander
	logger   *slog.Logger
}

// ProfileOpt is a functional option for configuring a [Profile].
type ProfileOpt func(*Profile)

// New creates a profile with default settings. Its GUID is derived from its
// name until the profile is persisted.
func New(opts ...ProfileOpt) *Profile {
	p := &Profile{
		name:           DefaultName,
		colorTable:     color.DefaultTable(),
		cursorColor:    color.DefaultCursorColor,
		cursorHeight:   DefaultCursorHeight,
		cursorShape:    settings.CursorStyleBar,
		fontFace:       DefaultFontFace,
		fontSize:       DefaultFontSize,
		padding:        DefaultPadding,
		historySize:    DefaultHistorySize,
		snapOnInput:    true,
		closeOnExit:    true,
		acrylicOpacity: DefaultAcrylicOpacity,
		expander:       expand.Default,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.expander == nil {
		p.expander = expand.Default
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// NewWithGUID creates a profile with default settings and an explicit GUID.
func NewWithGUID(id uuid.UUID, opts ...ProfileOpt) *Profile {
	return New(append([]ProfileOpt{WithGUID(id)}, opts...)...)
}

// WithGUID sets an explicit GUID.
func WithGUID(id uuid.UUID) ProfileOpt {
	return func(p *Profile) {
		p.guid = omit.From(id)
	}
}

// WithName sets the profile name.
func WithName(name string) ProfileOpt {
	return func(p *Profile) {
		p.name = name
	}
}

// WithCommandline sets the command started by the session.
func WithCommandline(cmdline string) ProfileOpt {
	return func(p *Profile) {
		p.commandline = cmdline
	}
}

// WithColorScheme sets the color scheme name.
func WithColorScheme(name string) ProfileOpt {
	return func(p *Profile) {
		p.schemeName = omit.From(name)
	}
}

// WithExpander sets the [expand.Expander] used for path expansion. By
// default the process environment is used.
func WithExpander(e *expand.Expander) ProfileOpt {
	return func(p *Profile) {
		p.expander = e
	}
}

// WithLogger sets the logger that receives debug records about ignored
// JSON values and color scheme fallbacks. By default [slog.Default] is used.
func WithLogger(logger *slog.Logger) ProfileOpt {
	return func(p *Profile) {
		p.logger = logger
	}
}

// GUID returns the explicit GUID, or the GUID derived from the name.
func (p *Profile) GUID() uuid.UUID {
	if id, ok := p.guid.Get(); ok {
		return id
	}

	return guid.FromName(p.name)
}

// HasGUID reports whether the profile has an explicit GUID.
func (p *Profile) HasGUID() bool {
	return p.guid.IsSet()
}

func (p *Profile) Name() string {
	return p.name
}

func (p *Profile) HasConnectionType() bool {
	return p.connectionType.IsSet()
}

// ConnectionType returns the connection type, or [uuid.Nil] when unset.
func (p *Profile) ConnectionType() uuid.UUID {
	id, _ := p.connectionType.Get()
	return id
}

// ColorSchemeName returns the color scheme name, if set.
func (p *Profile) ColorSchemeName() (string, bool) {
	return p.schemeName.Get()
}

func (p *Profile) CloseOnExit() bool {
	return p.closeOnExit
}

func (p *Profile) HasIcon() bool {
	return p.icon.IsSet()
}

// ExpandedIconPath returns the icon path with environment references
// expanded, or "" if no icon is set.
func (p *Profile) ExpandedIconPath() string {
	icon, ok := p.icon.Get()
	if !ok {
		return ""
	}

	return p.expander.Env(icon)
}

// ExpandedBackgroundImagePath returns the background image path with
// environment references expanded, or "" if no image is set.
func (p *Profile) ExpandedBackgroundImagePath() string {
	path, ok := p.backgroundImage.Get()
	if !ok {
		return ""
	}

	return p.expander.Env(path)
}

// EvaluateStartingDirectory expands environment references in dir and
// resolves it against the user's home directory if it is not rooted.
// Evaluating an already evaluated directory returns it unchanged.
func EvaluateStartingDirectory(dir string) string {
	return expand.StartingDirectory(dir)
}

func (p *Profile) SetName(name string) {
	p.name = name
}

func (p *Profile) SetFontFace(fontFace string) {
	p.fontFace = fontFace
}

func (p *Profile) SetFontSize(size int32) {
	p.fontSize = size
}

func (p *Profile) SetPadding(padding string) {
	p.padding = padding
}

func (p *Profile) SetTabTitle(title string) {
	p.tabTitle = omit.From(title)
}

func (p *Profile) SetCommandline(cmdline string) {
	p.commandline = cmdline
}

func (p *Profile) SetStartingDirectory(dir string) {
	p.startingDirectory = omit.From(dir)
}

func (p *Profile) SetHistorySize(size int32) {
	p.historySize = size
}

func (p *Profile) SetSnapOnInput(snap bool) {
	p.snapOnInput = snap
}

func (p *Profile) SetCloseOnExit(closeOnExit bool) {
	p.closeOnExit = closeOnExit
}

func (p *Profile) SetUseAcrylic(useAcrylic bool) {
	p.useAcrylic = useAcrylic
}

func (p *Profile) SetAcrylicOpacity(opacity float64) {
	p.acrylicOpacity = clamp01(opacity)
}

func (p *Profile) SetConnectionType(id uuid.UUID) {
	p.connectionType = omit.From(id)
}

func (p *Profile) SetIconPath(path string) {
	p.icon = omit.From(path)
}

// SetColorScheme sets the color scheme name used during resolution.
func (p *Profile) SetColorScheme(name string) {
	p.schemeName = omit.From(name)
}

// ClearColorScheme removes the color scheme name so stored colors are used.
func (p *Profile) ClearColorScheme() {
	p.schemeName = omit.Val[string]{}
}

func (p *Profile) SetDefaultForeground(c color.Color) {
	p.defaultForeground = omit.From(c)
}

func (p *Profile) SetDefaultBackground(c color.Color) {
	p.defaultBackground = omit.From(c)
}

// SetColorTableEntry sets entry i of the color table. Out of range indexes
// are ignored.
func (p *Profile) SetColorTableEntry(i int, c color.Color) {
	if i < 0 || i >= len(p.colorTable) {
		return
	}

	p.colorTable[i] = c
}

func (p *Profile) SetCursorColor(c color.Color) {
	p.cursorColor = c
}

func (p *Profile) SetCursorHeight(height uint32) {
	p.cursorHeight = height
}

func (p *Profile) SetCursorShape(shape settings.CursorStyle) {
	p.cursorShape = shape
}

func (p *Profile) SetScrollbarState(s settings.ScrollbarState) {
	p.scrollbarState = omit.From(s)
}

func (p *Profile) SetBackgroundImage(path string) {
	p.backgroundImage = omit.From(path)
}

func (p *Profile) SetBackgroundImageStretchMode(s settings.Stretch) {
	p.backgroundImageStretchMode = omit.From(s)
}

func (p *Profile) SetBackgroundImageOpacity(opacity float64) {
	p.backgroundImageOpacity = omit.From(clamp01(opacity))
}

func (p *Profile) SetBackgroundImageAlignment(a settings.Alignment) {
	p.backgroundImageAlignment = omit.From(a)
}

func clamp01(f float64) float64 {
	return min(max(f, 0), 1)
}
