package api

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

const schemaBaseURL = "https://sora.schemas.local/"

// Payload schemas checked before a request reaches the builders
const (
	SchemaGRC        = "grc"
	SchemaARC        = "arc"
	SchemaSAIL       = "sail"
	SchemaAssessment = "assessment"
)

// SchemaSet holds the compiled payload schemas. It is read-only after
// construction.
type SchemaSet struct {
	schemas map[string]*jsonschema.Schema
}

// NewSchemaSet compiles the embedded payload schemas
func NewSchemaSet() (*SchemaSet, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("read schemas: %w", err)
	}
	for _, entry := range entries {
		f, err := schemaFS.Open(path.Join("schemas", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("open schema %s: %w", entry.Name(), err)
		}
		err = c.AddResource(schemaBaseURL+entry.Name(), f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("add schema %s: %w", entry.Name(), err)
		}
	}

	set := &SchemaSet{schemas: make(map[string]*jsonschema.Schema)}
	for _, name := range []string{SchemaGRC, SchemaARC, SchemaSAIL, SchemaAssessment} {
		compiled, err := c.Compile(schemaBaseURL + name + ".schema.json")
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		set.schemas[name] = compiled
	}
	return set, nil
}

// SchemaError lists the payload locations that broke a schema
type SchemaError struct {
	Schema string
	Fields []FieldError
}

func (e *SchemaError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("payload does not match the %s schema", e.Schema)
	}
	return fmt.Sprintf("payload does not match the %s schema: %s %s", e.Schema, e.Fields[0].Field, e.Fields[0].Message)
}

// Validate decodes data as generic JSON and checks it against the named
// schema. Syntax errors come back unchanged so the caller can tell them apart.
func (s *SchemaSet) Validate(name string, data []byte) error {
	schema, ok := s.schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	err := schema.Validate(doc)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	out := &SchemaError{Schema: name}
	collectLeaves(ve, &out.Fields)
	return out
}

// collectLeaves keeps only the innermost causes, which name the offending
// location instead of the enclosing object
func collectLeaves(ve *jsonschema.ValidationError, out *[]FieldError) {
	if len(ve.Causes) == 0 {
		field := ve.InstanceLocation
		if field == "" {
			field = "/"
		}
		*out = append(*out, FieldError{Field: field, Message: ve.Message})
		return
	}
	for _, cause := range ve.Causes {
		collectLeaves(cause, out)
	}
}
