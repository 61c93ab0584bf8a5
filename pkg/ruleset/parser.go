package ruleset

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser turns the raw bytes of a rule document into compiled schemas.
type Parser interface {
	Parse(ctx context.Context, data []byte) ([]Schema, error)

	// SupportsFileExtension reports whether the parser reads files with ext.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// Document is the top-level structure of YAML and JSON rule documents.
type Document struct {
	Schemas []SchemaDefinition `yaml:"schemas" json:"schemas"`
}

// YAMLParser reads YAML rule documents. Unknown keys are rejected.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) ([]Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParseCancelled, err)
	}

	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	return compileAll(doc.Schemas)
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser reads JSON rule documents. Unknown keys are rejected.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, data []byte) ([]Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParseCancelled, err)
	}

	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	return compileAll(doc.Schemas)
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

// ParserForFile picks the first parser that supports the extension of filename.
// With no parsers given it chooses between YAMLParser and JSONParser.
func ParserForFile(filename string, parsers ...Parser) (Parser, error) {
	if len(parsers) == 0 {
		parsers = []Parser{NewYAMLParser(), NewJSONParser()}
	}
	ext := filepath.Ext(filename)
	for _, p := range parsers {
		if p != nil && p.SupportsFileExtension(ext) {
			return p, nil
		}
	}
	return nil, errors.Join(ErrUnsupportedFormat, errors.New(filename))
}

func compileAll(defs []SchemaDefinition) ([]Schema, error) {
	schemas := make([]Schema, 0, len(defs))
	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		schema, err := Compile(def)
		if err != nil {
			return nil, errors.Join(ErrInvalidDocument, err)
		}
		if seen[schema.Name] {
			return nil, errors.Join(ErrDuplicateSchema, errors.New(schema.Name))
		}
		seen[schema.Name] = true
		schemas = append(schemas, schema)
	}
	return schemas, nil
}
