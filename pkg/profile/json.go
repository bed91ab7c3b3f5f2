package profile

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/aarondl/opt/omit"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/macropower/termprofile/pkg/color"
	"github.com/macropower/termprofile/pkg/guid"
	"github.com/macropower/termprofile/pkg/settings"
)

// JSON keys.
const (
	KeyGUID                       = "guid"
	KeyName                       = "name"
	KeyConnectionType             = "connectionType"
	KeyColorScheme                = "colorScheme"
	KeyForeground                 = "foreground"
	KeyBackground                 = "background"
	KeyColorTable                 = "colorTable"
	KeyTabTitle                   = "tabTitle"
	KeyHistorySize                = "historySize"
	KeySnapOnInput                = "snapOnInput"
	KeyCursorColor                = "cursorColor"
	KeyCursorHeight               = "cursorHeight"
	KeyCursorShape                = "cursorShape"
	KeyCommandline                = "commandline"
	KeyFontFace                   = "fontFace"
	KeyFontSize                   = "fontSize"
	KeyStartingDirectory          = "startingDirectory"
	KeyAcrylicOpacity             = "acrylicOpacity"
	KeyUseAcrylic                 = "useAcrylic"
	KeyBackgroundImage            = "backgroundImage"
	KeyBackgroundImageOpacity     = "backgroundImageOpacity"
	KeyBackgroundImageStretchMode = "backgroundImageStretchMode"
	KeyBackgroundImageAlignment   = "backgroundImageAlignment"
	KeyScrollbarState             = "scrollbarState"
	KeyCloseOnExit                = "closeOnExit"
	KeyPadding                    = "padding"
	KeyIcon                       = "icon"
)

// ErrInvalidDocument is returned by [Parse] when data is not a JSON object.
var ErrInvalidDocument = errors.New("invalid profile document")

// FromJSON creates a profile from a JSON object. It never fails: anything
// that cannot be read, including a document that is not a JSON object,
// leaves the corresponding fields at their defaults.
func FromJSON(data []byte, opts ...ProfileOpt) *Profile {
	p := New(opts...)
	if !gjson.ValidBytes(data) {
		p.logger.Debug("ignore invalid profile json")
		return p
	}

	p.readJSON(gjson.ParseBytes(data))

	return p
}

// Parse is like [FromJSON], but returns [ErrInvalidDocument] if data is not
// a JSON object.
func Parse(data []byte, opts ...ProfileOpt) (*Profile, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidDocument)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected object, got %s", ErrInvalidDocument, root.Type)
	}

	p := New(opts...)
	p.readJSON(root)

	return p, nil
}

func (p *Profile) readJSON(obj gjson.Result) {
	if !obj.IsObject() {
		p.logger.Debug("ignore non-object profile json", slog.String("type", obj.Type.String()))
		return
	}

	r := newReader(obj, p.logger)

	if s, ok := r.string(KeyGUID); ok {
		if id, err := guid.Parse(s); err == nil {
			p.guid = omit.From(id)
		} else {
			r.ignore(KeyGUID, err)
		}
	}
	if s, ok := r.string(KeyConnectionType); ok {
		if id, err := guid.Parse(s); err == nil {
			p.connectionType = omit.From(id)
		} else {
			r.ignore(KeyConnectionType, err)
		}
	}
	if s, ok := r.string(KeyName); ok {
		p.name = s
	}

	if s, ok := r.string(KeyColorScheme); ok {
		p.schemeName = omit.From(s)
	}
	if c, ok := r.color(KeyForeground); ok {
		p.defaultForeground = omit.From(c)
	}
	if c, ok := r.color(KeyBackground); ok {
		p.defaultBackground = omit.From(c)
	}
	if table, ok := r.get(KeyColorTable, gjson.JSON); ok {
		p.readColorTable(r, table)
	}
	if s, ok := r.string(KeyTabTitle); ok {
		p.tabTitle = omit.From(s)
	}

	if n, ok := r.int(KeyHistorySize); ok {
		p.historySize = int32(n) //nolint:gosec // G115: range checked by reader.
	}
	if b, ok := r.bool(KeySnapOnInput); ok {
		p.snapOnInput = b
	}
	if c, ok := r.color(KeyCursorColor); ok {
		p.cursorColor = c
	}
	if n, ok := r.int(KeyCursorHeight); ok {
		if n >= 0 {
			p.cursorHeight = uint32(n)
		} else {
			r.ignore(KeyCursorHeight, fmt.Errorf("%d is negative", n))
		}
	}
	if v, ok := readToken(r, KeyCursorShape, settings.LookupCursorStyle); ok {
		p.cursorShape = v
	}

	if s, ok := r.string(KeyCommandline); ok {
		p.commandline = s
	}
	if s, ok := r.string(KeyFontFace); ok {
		p.fontFace = s
	}
	if n, ok := r.int(KeyFontSize); ok {
		p.fontSize = int32(n) //nolint:gosec // G115: range checked by reader.
	}
	if s, ok := r.string(KeyStartingDirectory); ok {
		p.startingDirectory = omit.From(s)
	}
	if f, ok := r.float(KeyAcrylicOpacity); ok {
		p.acrylicOpacity = clamp01(f)
	}
	if b, ok := r.bool(KeyUseAcrylic); ok {
		p.useAcrylic = b
	}

	if s, ok := r.string(KeyBackgroundImage); ok {
		p.backgroundImage = omit.From(s)
	}
	if f, ok := r.float(KeyBackgroundImageOpacity); ok {
		p.backgroundImageOpacity = omit.From(clamp01(f))
	}
	if v, ok := readToken(r, KeyBackgroundImageStretchMode, settings.LookupStretch); ok {
		p.backgroundImageStretchMode = omit.From(v)
	}
	if v, ok := readToken(r, KeyBackgroundImageAlignment, settings.LookupAlignment); ok {
		p.backgroundImageAlignment = omit.From(v)
	}
	if v, ok := readToken(r, KeyScrollbarState, settings.LookupScrollbarState); ok {
		p.scrollbarState = omit.From(v)
	}
	if b, ok := r.bool(KeyCloseOnExit); ok {
		p.closeOnExit = b
	}
	if s, ok := r.string(KeyPadding); ok {
		p.padding = s
	}
	if s, ok := r.string(KeyIcon); ok {
		p.icon = omit.From(s)
	}
}

// readColorTable copies the valid entries of table into the color table.
// Invalid entries keep their current value.
func (p *Profile) readColorTable(r reader, table gjson.Result) {
	if !table.IsArray() {
		r.ignore(KeyColorTable, errors.New("expected an array"))
		return
	}

	for i, v := range table.Array() {
		key := fmt.Sprintf("%s[%d]", KeyColorTable, i)
		if i >= color.TableSize {
			r.ignore(key, fmt.Errorf("table has only %d entries", color.TableSize))
			continue
		}
		if v.Type != gjson.String {
			r.ignore(key, fmt.Errorf("expected a string, got %s", v.Type))
			continue
		}

		c, err := color.Parse(v.String())
		if err != nil {
			r.ignore(key, err)
			continue
		}

		p.colorTable[i] = c
	}
}

// ToJSON writes the profile as a JSON object. Keys for unset optional fields
// are omitted. The "guid" key is always written, using the derived GUID if
// the profile has no explicit one.
func (p *Profile) ToJSON() ([]byte, error) {
	w := writer{out: []byte(`{}`)}

	w.set(KeyGUID, guid.Format(p.GUID()))
	w.set(KeyName, p.name)
	if id, ok := p.connectionType.Get(); ok {
		w.set(KeyConnectionType, guid.Format(id))
	}

	if name, ok := p.schemeName.Get(); ok {
		w.set(KeyColorScheme, name)
	}
	if c, ok := p.defaultForeground.Get(); ok {
		w.set(KeyForeground, c.String())
	}
	if c, ok := p.defaultBackground.Get(); ok {
		w.set(KeyBackground, c.String())
	}
	w.set(KeyColorTable, p.colorTable.Strings())
	if title, ok := p.tabTitle.Get(); ok {
		w.set(KeyTabTitle, title)
	}

	w.set(KeyHistorySize, p.historySize)
	w.set(KeySnapOnInput, p.snapOnInput)
	w.set(KeyCursorColor, p.cursorColor.String())
	w.set(KeyCursorHeight, p.cursorHeight)
	w.set(KeyCursorShape, p.cursorShape.String())

	w.set(KeyCommandline, p.commandline)
	w.set(KeyFontFace, p.fontFace)
	w.set(KeyFontSize, p.fontSize)
	if dir, ok := p.startingDirectory.Get(); ok {
		w.set(KeyStartingDirectory, dir)
	}
	w.set(KeyAcrylicOpacity, p.acrylicOpacity)
	w.set(KeyUseAcrylic, p.useAcrylic)

	if path, ok := p.backgroundImage.Get(); ok {
		w.set(KeyBackgroundImage, path)
	}
	if opacity, ok := p.backgroundImageOpacity.Get(); ok {
		w.set(KeyBackgroundImageOpacity, opacity)
	}
	if mode, ok := p.backgroundImageStretchMode.Get(); ok {
		w.set(KeyBackgroundImageStretchMode, mode.String())
	}
	if align, ok := p.backgroundImageAlignment.Get(); ok {
		w.set(KeyBackgroundImageAlignment, align.String())
	}
	if state, ok := p.scrollbarState.Get(); ok {
		w.set(KeyScrollbarState, state.String())
	}
	w.set(KeyCloseOnExit, p.closeOnExit)
	w.set(KeyPadding, p.padding)
	if icon, ok := p.icon.Get(); ok {
		w.set(KeyIcon, icon)
	}

	if w.err != nil {
		return nil, w.err
	}

	return w.out, nil
}

// MarshalJSON implements [encoding/json.Marshaler].
func (p *Profile) MarshalJSON() ([]byte, error) {
	return p.ToJSON()
}

// UnmarshalJSON implements [encoding/json.Unmarshaler]. Fields are reset to
// their defaults before reading, like [FromJSON].
func (p *Profile) UnmarshalJSON(data []byte) error {
	*p = *FromJSON(data, WithExpander(p.expander), WithLogger(p.logger))

	return nil
}

type reader struct {
	logger *slog.Logger
	fields map[string]gjson.Result
}

// newReader indexes the members of obj by name. Keys are matched literally,
// and the last of duplicate keys wins.
func newReader(obj gjson.Result, logger *slog.Logger) reader {
	fields := map[string]gjson.Result{}
	obj.ForEach(func(key, value gjson.Result) bool {
		fields[key.String()] = value
		return true
	})

	return reader{logger: logger, fields: fields}
}

func (r reader) get(key string, want ...gjson.Type) (gjson.Result, bool) {
	v, ok := r.fields[key]
	if !ok {
		return v, false
	}

	for _, t := range want {
		if v.Type == t {
			return v, true
		}
	}

	r.logger.Debug("ignore json value with unexpected type",
		slog.String("key", key),
		slog.String("type", v.Type.String()),
	)

	return v, false
}

func (r reader) ignore(key string, err error) {
	r.logger.Debug("ignore invalid json value",
		slog.String("key", key),
		slog.Any("error", err),
	)
}

func (r reader) string(key string) (string, bool) {
	v, ok := r.get(key, gjson.String)
	return v.String(), ok
}

func (r reader) bool(key string) (bool, bool) {
	v, ok := r.get(key, gjson.True, gjson.False)
	return v.Bool(), ok
}

func (r reader) float(key string) (float64, bool) {
	v, ok := r.get(key, gjson.Number)
	return v.Float(), ok
}

// int reads an integral number that fits in an int32.
func (r reader) int(key string) (int64, bool) {
	v, ok := r.get(key, gjson.Number)
	if !ok {
		return 0, false
	}

	f := v.Float()
	if f != float64(int64(f)) || f < math.MinInt32 || f > math.MaxInt32 {
		r.ignore(key, fmt.Errorf("%v is not a 32-bit integer", v.Raw))
		return 0, false
	}

	return int64(f), true
}

func (r reader) color(key string) (color.Color, bool) {
	s, ok := r.string(key)
	if !ok {
		return 0, false
	}

	c, err := color.Parse(s)
	if err != nil {
		r.ignore(key, err)
		return 0, false
	}

	return c, true
}

// readToken reads an enum token. Unknown tokens are logged and read as the
// fallback value returned by lookup.
func readToken[T any](r reader, key string, lookup func(string) (T, bool)) (T, bool) {
	s, ok := r.string(key)
	if !ok {
		var zero T
		return zero, false
	}

	v, known := lookup(s)
	if !known {
		r.ignore(key, fmt.Errorf("unknown token %q", s))
	}

	return v, true
}

// writer accumulates sjson edits, keeping the first error.
type writer struct {
	err error
	out []byte
}

func (w *writer) set(key string, value any) {
	if w.err != nil {
		return
	}

	out, err := sjson.SetBytes(w.out, key, value)
	if err != nil {
		w.err = fmt.Errorf("set %q: %w", key, err)
		return
	}

	w.out = out
}
