// Package schema generates the JSON Schema of a profile document and
// validates documents against it.
//
// Reading a profile with [github.com/macropower/termprofile/pkg/profile.FromJSON]
// never fails; the schema describes what a well-formed document looks like,
// so tools can report values that would otherwise be silently ignored.
package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"

	"github.com/macropower/termprofile/pkg/settings"
)

//go:generate go run ../../internal/schemagen/main.go -o profile.schema.json

// ID is the canonical identifier of the profile schema.
const ID = "https://raw.githubusercontent.com/macropower/termprofile/refs/heads/main/pkg/schema/profile.schema.json"

const (
	colorPattern = `^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`
	guidPattern  = `^\{?[0-9A-Fa-f]{8}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{12}\}?$`
)

// ProfileDocument describes the JSON object form of a profile. It is only
// used to generate the schema.
type ProfileDocument struct {
	// GUID uniquely identifies the profile. If absent, it is derived from the name.
	GUID string `json:"guid,omitempty" jsonschema:"title=GUID"`
	// Name is the display name of the profile.
	Name string `json:"name" jsonschema:"title=Name,required"`
	// ConnectionType identifies the connection provider, if any.
	ConnectionType string `json:"connectionType,omitempty" jsonschema:"title=Connection Type"`
	// ColorScheme names a color scheme that overrides the profile's colors.
	ColorScheme string `json:"colorScheme,omitempty" jsonschema:"title=Color Scheme"`
	// Foreground is the default text color.
	Foreground string `json:"foreground,omitempty" jsonschema:"title=Foreground"`
	// Background is the default background color.
	Background string `json:"background,omitempty" jsonschema:"title=Background"`
	// ColorTable holds the 16 indexed colors. Missing entries keep their defaults.
	ColorTable []string `json:"colorTable,omitempty" jsonschema:"title=Color Table,maxItems=16"`
	// TabTitle overrides the name as the initial title.
	TabTitle string `json:"tabTitle,omitempty" jsonschema:"title=Tab Title"`
	// HistorySize is the number of scrollback lines.
	HistorySize int32 `json:"historySize,omitempty" jsonschema:"title=History Size"`
	// SnapOnInput scrolls to the input line on keypress.
	SnapOnInput bool `json:"snapOnInput,omitempty" jsonschema:"title=Snap On Input"`
	// CursorColor is the cursor color.
	CursorColor string `json:"cursorColor,omitempty" jsonschema:"title=Cursor Color"`
	// CursorHeight is the cursor height in percent, used by the vintage shape.
	CursorHeight uint32 `json:"cursorHeight,omitempty" jsonschema:"title=Cursor Height"`
	// CursorShape is the cursor shape.
	CursorShape string `json:"cursorShape,omitempty" jsonschema:"title=Cursor Shape"`
	// Commandline is the command started by the session.
	Commandline string `json:"commandline,omitempty" jsonschema:"title=Commandline"`
	// FontFace is the font family.
	FontFace string `json:"fontFace,omitempty" jsonschema:"title=Font Face"`
	// FontSize is the font size in points.
	FontSize int32 `json:"fontSize,omitempty" jsonschema:"title=Font Size"`
	// StartingDirectory is the initial working directory. Environment references are expanded.
	StartingDirectory string `json:"startingDirectory,omitempty" jsonschema:"title=Starting Directory"`
	// AcrylicOpacity is the tint opacity used with acrylic.
	AcrylicOpacity float64 `json:"acrylicOpacity,omitempty" jsonschema:"title=Acrylic Opacity,minimum=0,maximum=1"`
	// UseAcrylic enables the acrylic background.
	UseAcrylic bool `json:"useAcrylic,omitempty" jsonschema:"title=Use Acrylic"`
	// BackgroundImage is the path of a background image. Environment references are expanded.
	BackgroundImage string `json:"backgroundImage,omitempty" jsonschema:"title=Background Image"`
	// BackgroundImageOpacity is the opacity of the background image.
	BackgroundImageOpacity float64 `json:"backgroundImageOpacity,omitempty" jsonschema:"title=Background Image Opacity,minimum=0,maximum=1"`
	// BackgroundImageStretchMode controls how the background image is scaled.
	BackgroundImageStretchMode string `json:"backgroundImageStretchMode,omitempty" jsonschema:"title=Background Image Stretch Mode"`
	// BackgroundImageAlignment positions the background image.
	BackgroundImageAlignment string `json:"backgroundImageAlignment,omitempty" jsonschema:"title=Background Image Alignment"`
	// ScrollbarState controls scrollbar visibility.
	ScrollbarState string `json:"scrollbarState,omitempty" jsonschema:"title=Scrollbar State"`
	// CloseOnExit closes the session when its process exits.
	CloseOnExit bool `json:"closeOnExit,omitempty" jsonschema:"title=Close On Exit"`
	// Padding is the terminal padding, as 1, 2 or 4 comma separated numbers.
	Padding string `json:"padding,omitempty" jsonschema:"title=Padding"`
	// Icon is the path of the profile icon. Environment references are expanded.
	Icon string `json:"icon,omitempty" jsonschema:"title=Icon"`
}

// JSONSchemaExtend adds the formats that struct tags cannot express.
func (ProfileDocument) JSONSchemaExtend(jss *jsonschema.Schema) {
	for _, key := range []string{"guid", "connectionType"} {
		setPattern(jss, key, guidPattern)
	}
	for _, key := range []string{"foreground", "background", "cursorColor"} {
		setPattern(jss, key, colorPattern)
	}
	if table, ok := jss.Properties.Get("colorTable"); ok && table.Items != nil {
		table.Items.Pattern = colorPattern
	}

	setEnum(jss, "cursorShape", settings.CursorStyleTokens())
	setEnum(jss, "scrollbarState", settings.ScrollbarStateTokens())
	setEnum(jss, "backgroundImageStretchMode", settings.StretchTokens())
	setEnum(jss, "backgroundImageAlignment", settings.AlignmentTokens())
}

func setPattern(jss *jsonschema.Schema, key, pattern string) {
	prop, ok := jss.Properties.Get(key)
	if !ok {
		panic(key + " property not found in schema")
	}

	prop.Pattern = pattern
}

func setEnum(jss *jsonschema.Schema, key string, tokens []string) {
	prop, ok := jss.Properties.Get(key)
	if !ok {
		panic(key + " property not found in schema")
	}

	prop.Enum = make([]any, len(tokens))
	for i, token := range tokens {
		prop.Enum[i] = token
	}
}

var generated = sync.OnceValues(func() ([]byte, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}

	jss := r.Reflect(&ProfileDocument{})
	jss.ID = ID
	jss.Title = "Terminal Profile"
	jss.Description = "A single set of terminal settings."

	b, err := json.MarshalIndent(jss, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return b, nil
})

// Generate returns the JSON Schema of a profile document.
func Generate() ([]byte, error) {
	b, err := generated()
	if err != nil {
		return nil, err
	}

	return append([]byte(nil), b...), nil
}
