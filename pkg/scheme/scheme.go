// Package scheme implements named color schemes: a foreground, a background
// and a 16 entry color table that profiles reference by name.
package scheme

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	_ "embed"

	"github.com/macropower/termprofile/pkg/color"
	"github.com/macropower/termprofile/pkg/settings"
)

//go:embed schemes.json
var builtinJSON []byte

var builtin = sync.OnceValue(func() []ColorScheme {
	return ListFromJSON(builtinJSON)
})

// ColorScheme is a named palette.
type ColorScheme struct {
	Name       string
	Foreground color.Color
	Background color.Color
	Table      color.Table
}

// New returns a scheme with the given name and the default palette.
func New(name string) ColorScheme {
	return ColorScheme{
		Name:       name,
		Foreground: color.DefaultForeground,
		Background: color.DefaultBackground,
		Table:      color.DefaultTable(),
	}
}

// FromJSON reads a scheme object. Entries that are missing or malformed keep
// the default palette. It reports false if data is not an object with a
// string "name".
func FromJSON(data []byte) (ColorScheme, bool) {
	if !gjson.ValidBytes(data) {
		return ColorScheme{}, false
	}

	return fromResult(gjson.ParseBytes(data))
}

// ListFromJSON reads an array of scheme objects, skipping invalid entries.
// A document of the form {"schemes": [...]} is also accepted.
func ListFromJSON(data []byte) []ColorScheme {
	if !gjson.ValidBytes(data) {
		return nil
	}

	root := gjson.ParseBytes(data)
	if root.IsObject() {
		root = root.Get("schemes")
	}
	if !root.IsArray() {
		return nil
	}

	var schemes []ColorScheme

	root.ForEach(func(_, value gjson.Result) bool {
		cs, ok := fromResult(value)
		if ok {
			schemes = append(schemes, cs)
		} else {
			slog.Debug("skip invalid color scheme", slog.String("json", value.Raw))
		}

		return true
	})

	return schemes
}

func fromResult(obj gjson.Result) (ColorScheme, bool) {
	if !obj.IsObject() {
		return ColorScheme{}, false
	}

	name := obj.Get("name")
	if name.Type != gjson.String {
		return ColorScheme{}, false
	}

	cs := New(name.String())
	readColor(obj, "foreground", &cs.Foreground)
	readColor(obj, "background", &cs.Background)

	// Older documents store the table as a "colors" array.
	if colors := obj.Get("colors"); colors.IsArray() {
		for i, v := range colors.Array() {
			if i >= color.TableSize {
				break
			}
			if v.Type != gjson.String {
				continue
			}
			if c, err := color.Parse(v.String()); err == nil {
				cs.Table[i] = c
			}
		}
	}

	for i, key := range color.TableNames {
		readColor(obj, key, &cs.Table[i])
	}

	return cs, true
}

func readColor(obj gjson.Result, key string, dst *color.Color) {
	v := obj.Get(key)
	if v.Type != gjson.String {
		return
	}

	c, err := color.Parse(v.String())
	if err != nil {
		slog.Debug("ignore invalid color",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return
	}

	*dst = c
}

// ToJSON writes the scheme using named table entries.
func (cs ColorScheme) ToJSON() ([]byte, error) {
	out := []byte(`{}`)

	var err error

	out, err = sjson.SetBytes(out, "name", cs.Name)
	if err != nil {
		return nil, fmt.Errorf("set name: %w", err)
	}

	out, err = sjson.SetBytes(out, "foreground", cs.Foreground.String())
	if err != nil {
		return nil, fmt.Errorf("set foreground: %w", err)
	}

	out, err = sjson.SetBytes(out, "background", cs.Background.String())
	if err != nil {
		return nil, fmt.Errorf("set background: %w", err)
	}

	for i, key := range color.TableNames {
		out, err = sjson.SetBytes(out, key, cs.Table[i].String())
		if err != nil {
			return nil, fmt.Errorf("set %s: %w", key, err)
		}
	}

	return out, nil
}

// Apply copies the scheme's colors into ts.
func (cs ColorScheme) Apply(ts *settings.TerminalSettings) {
	ts.DefaultForeground = cs.Foreground
	ts.DefaultBackground = cs.Background
	ts.ColorTable = cs.Table
}

// Find returns the scheme whose name matches exactly.
func Find(schemes []ColorScheme, name string) (*ColorScheme, bool) {
	for i := range schemes {
		if schemes[i].Name == name {
			return &schemes[i], true
		}
	}

	return nil, false
}

// Names returns the names of schemes, in order.
func Names(schemes []ColorScheme) []string {
	names := make([]string, len(schemes))
	for i, cs := range schemes {
		names[i] = cs.Name
	}

	return names
}

// Builtin returns a copy of the embedded scheme catalog.
func Builtin() []ColorScheme {
	b := builtin()
	out := make([]ColorScheme, len(b))
	copy(out, b)

	return out
}
