package settings

// CursorStyle is the shape of the text cursor.
type CursorStyle int

const (
	CursorStyleBar CursorStyle = iota
	CursorStyleVintage
	CursorStyleUnderscore
	CursorStyleFilledBox
	CursorStyleEmptyBox
)

var cursorStyleTokens = tokenTable[CursorStyle]{
	fallback: CursorStyleBar,
	entries: []tokenEntry[CursorStyle]{
		{CursorStyleVintage, "vintage"},
		{CursorStyleBar, "bar"},
		{CursorStyleUnderscore, "underscore"},
		{CursorStyleFilledBox, "filledBox"},
		{CursorStyleEmptyBox, "emptyBox"},
	},
}

// ParseCursorStyle returns the [CursorStyle] for token, or [CursorStyleBar]
// if the token is not recognized.
func ParseCursorStyle(token string) CursorStyle { return cursorStyleTokens.parse(token) }

// LookupCursorStyle is like [ParseCursorStyle], but also reports whether the
// token was recognized.
func LookupCursorStyle(token string) (CursorStyle, bool) { return cursorStyleTokens.lookup(token) }

// CursorStyleTokens returns all valid cursor shape tokens.
func CursorStyleTokens() []string { return cursorStyleTokens.tokens() }

func (s CursorStyle) String() string { return cursorStyleTokens.format(s) }

func (s CursorStyle) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *CursorStyle) UnmarshalText(b []byte) error {
	*s = ParseCursorStyle(string(b))
	return nil
}

// ScrollbarState controls scrollbar visibility.
type ScrollbarState int

const (
	ScrollbarStateVisible ScrollbarState = iota
	ScrollbarStateHidden
)

var scrollbarStateTokens = tokenTable[ScrollbarState]{
	fallback: ScrollbarStateVisible,
	entries: []tokenEntry[ScrollbarState]{
		{ScrollbarStateVisible, "visible"},
		{ScrollbarStateHidden, "hidden"},
	},
}

// ParseScrollbarState returns the [ScrollbarState] for token, or
// [ScrollbarStateVisible] if the token is not recognized.
func ParseScrollbarState(token string) ScrollbarState { return scrollbarStateTokens.parse(token) }

// LookupScrollbarState is like [ParseScrollbarState], but also reports
// whether the token was recognized.
func LookupScrollbarState(token string) (ScrollbarState, bool) {
	return scrollbarStateTokens.lookup(token)
}

// ScrollbarStateTokens returns all valid scrollbar state tokens.
func ScrollbarStateTokens() []string { return scrollbarStateTokens.tokens() }

func (s ScrollbarState) String() string { return scrollbarStateTokens.format(s) }

func (s ScrollbarState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *ScrollbarState) UnmarshalText(b []byte) error {
	*s = ParseScrollbarState(string(b))
	return nil
}

// Stretch controls how a background image fills the terminal.
type Stretch int

const (
	StretchUniformToFill Stretch = iota
	StretchNone
	StretchFill
	StretchUniform
)

var stretchTokens = tokenTable[Stretch]{
	fallback: StretchUniformToFill,
	entries: []tokenEntry[Stretch]{
		{StretchNone, "none"},
		{StretchFill, "fill"},
		{StretchUniform, "uniform"},
		{StretchUniformToFill, "uniformToFill"},
	},
}

// ParseStretch returns the [Stretch] for token, or [StretchUniformToFill] if
// the token is not recognized.
func ParseStretch(token string) Stretch { return stretchTokens.parse(token) }

// LookupStretch is like [ParseStretch], but also reports whether the token
// was recognized.
func LookupStretch(token string) (Stretch, bool) { return stretchTokens.lookup(token) }

// StretchTokens returns all valid stretch mode tokens.
func StretchTokens() []string { return stretchTokens.tokens() }

func (s Stretch) String() string { return stretchTokens.format(s) }

func (s Stretch) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Stretch) UnmarshalText(b []byte) error {
	*s = ParseStretch(string(b))
	return nil
}

type HorizontalAlignment int

const (
	HorizontalAlignmentCenter HorizontalAlignment = iota
	HorizontalAlignmentLeft
	HorizontalAlignmentRight
)

func (h HorizontalAlignment) String() string {
	switch h {
	case HorizontalAlignmentLeft:
		return "left"
	case HorizontalAlignmentRight:
		return "right"
	default:
		return "center"
	}
}

func (h HorizontalAlignment) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

type VerticalAlignment int

const (
	VerticalAlignmentCenter VerticalAlignment = iota
	VerticalAlignmentTop
	VerticalAlignmentBottom
)

func (v VerticalAlignment) String() string {
	switch v {
	case VerticalAlignmentTop:
		return "top"
	case VerticalAlignmentBottom:
		return "bottom"
	default:
		return "center"
	}
}

func (v VerticalAlignment) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// Alignment positions a background image. The zero value is centered on
// both axes.
type Alignment struct {
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment
}

var alignmentTokens = tokenTable[Alignment]{
	fallback: Alignment{HorizontalAlignmentCenter, VerticalAlignmentCenter},
	entries: []tokenEntry[Alignment]{
		{Alignment{HorizontalAlignmentCenter, VerticalAlignmentTop}, "top"},
		{Alignment{HorizontalAlignmentCenter, VerticalAlignmentBottom}, "bottom"},
		{Alignment{HorizontalAlignmentLeft, VerticalAlignmentCenter}, "left"},
		{Alignment{HorizontalAlignmentRight, VerticalAlignmentCenter}, "right"},
		{Alignment{HorizontalAlignmentLeft, VerticalAlignmentTop}, "topLeft"},
		{Alignment{HorizontalAlignmentRight, VerticalAlignmentTop}, "topRight"},
		{Alignment{HorizontalAlignmentLeft, VerticalAlignmentBottom}, "bottomLeft"},
		{Alignment{HorizontalAlignmentRight, VerticalAlignmentBottom}, "bottomRight"},
		{Alignment{HorizontalAlignmentCenter, VerticalAlignmentCenter}, "center"},
	},
}

// ParseAlignment returns the [Alignment] for token, or a centered alignment
// if the token is not recognized.
func ParseAlignment(token string) Alignment { return alignmentTokens.parse(token) }

// LookupAlignment is like [ParseAlignment], but also reports whether the
// token was recognized.
func LookupAlignment(token string) (Alignment, bool) { return alignmentTokens.lookup(token) }

// AlignmentTokens returns all valid alignment tokens.
func AlignmentTokens() []string { return alignmentTokens.tokens() }

func (a Alignment) String() string { return alignmentTokens.format(a) }

func (a Alignment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Alignment) UnmarshalText(b []byte) error {
	*a = ParseAlignment(string(b))
	return nil
}
