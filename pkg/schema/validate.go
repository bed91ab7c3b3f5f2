package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrSchemaValidation is wrapped by every [ValidationError].
var ErrSchemaValidation = errors.New("schema validation")

// ValidationError reports the most specific location of a schema
// violation. Path can be used with [yaml.Path.AnnotateSource] on the
// original document, since JSON is also YAML.
type ValidationError struct {
	Path   *yaml.Path // Path to the offending value.
	Err    error      // Underlying error.
	Detail string     // Validator message.
}

func (e ValidationError) Error() string {
	if e.Path != nil {
		return fmt.Sprintf("error at %s: %s", e.Path.String(), e.Detail)
	}

	return "validation error: " + e.Detail
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// Validator validates documents against a JSON schema.
// Uses [github.com/santhosh-tekuri/jsonschema/v6].
type Validator struct {
	schema *jsonschema.Schema
}

var defaultValidator = sync.OnceValues(func() (*Validator, error) {
	data, err := Generate()
	if err != nil {
		return nil, err
	}

	return NewValidator(data)
})

// DefaultValidator returns a [Validator] for the generated profile schema.
func DefaultValidator() (*Validator, error) {
	return defaultValidator()
}

// NewValidator compiles the JSON schema in schemaData.
func NewValidator(schemaData []byte) (*Validator, error) {
	var doc any
	if err := json.Unmarshal(schemaData, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(ID, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	jss, err := compiler.Compile(ID)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Validator{schema: jss}, nil
}

// ValidateJSON decodes data and validates it. Malformed JSON is reported
// as a plain error.
func (v *Validator) ValidateJSON(data []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	return v.Validate(doc)
}

// Validate validates an already decoded document. On failure it returns a
// [*ValidationError].
func (v *Validator) Validate(data any) error {
	err := v.schema.Validate(data)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("%w: %w", ErrSchemaValidation, err)
	}

	return &ValidationError{
		Path:   pathFromLocation(deepestLocation(verr)),
		Err:    ErrSchemaValidation,
		Detail: verr.Error(),
	}
}

// deepestLocation returns the longest instance location among err and its
// causes.
func deepestLocation(err *jsonschema.ValidationError) []string {
	deepest := err.InstanceLocation
	for _, cause := range err.Causes {
		if loc := deepestLocation(cause); len(loc) > len(deepest) {
			deepest = loc
		}
	}

	return deepest
}

func pathFromLocation(location []string) *yaml.Path {
	pb := &yaml.PathBuilder{}
	cur := pb.Root()

	for _, part := range location {
		if idx, err := strconv.ParseUint(part, 10, 0); err == nil {
			cur = cur.Index(uint(idx))
			continue
		}

		cur = cur.Child(part)
	}

	return cur.Build()
}
