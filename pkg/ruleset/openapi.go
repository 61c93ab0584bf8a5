package ruleset

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// MessagesExtension is the OpenAPI property extension holding custom messages,
// keyed by check name.
const MessagesExtension = "x-messages"

// OpenAPIParser derives schemas from the object schemas under
// components.schemas of an OpenAPI 3 document.
//
// Each property becomes a field: names listed in `required` are required and
// minLength, maxLength and pattern carry over as is. Properties are ordered by
// name since OpenAPI objects are unordered.
type OpenAPIParser struct{}

func NewOpenAPIParser() *OpenAPIParser {
	return &OpenAPIParser{}
}

func (p *OpenAPIParser) Parse(ctx context.Context, data []byte) ([]Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParseCancelled, err)
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	schemas := make([]Schema, 0, len(names))
	for _, name := range names {
		ref := doc.Components.Schemas[name]
		if ref == nil || ref.Value == nil || len(ref.Value.Properties) == 0 {
			continue
		}
		def, err := definitionFromOpenAPI(name, ref.Value)
		if err != nil {
			return nil, errors.Join(ErrInvalidDocument, err)
		}
		schema, err := Compile(def)
		if err != nil {
			return nil, errors.Join(ErrInvalidDocument, err)
		}
		schemas = append(schemas, schema)
	}
	return schemas, nil
}

func (p *OpenAPIParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml") || strings.EqualFold(ext, "json")
}

func definitionFromOpenAPI(name string, src *openapi3.Schema) (SchemaDefinition, error) {
	required := make(map[string]bool, len(src.Required))
	for _, field := range src.Required {
		required[field] = true
	}

	props := make([]string, 0, len(src.Properties))
	for prop := range src.Properties {
		props = append(props, prop)
	}
	sort.Strings(props)

	def := SchemaDefinition{Name: name, Fields: make([]FieldDefinition, 0, len(props))}
	for _, prop := range props {
		fd := FieldDefinition{Name: prop, Required: required[prop]}

		ref := src.Properties[prop]
		if ref != nil && ref.Value != nil {
			ps := ref.Value
			if ps.MinLength != 0 {
				n := clampLength(ps.MinLength)
				fd.MinLength = &n
			}
			if ps.MaxLength != nil {
				n := clampLength(*ps.MaxLength)
				fd.MaxLength = &n
			}
			fd.Pattern = ps.Pattern

			msgs, err := messagesFromExtensions(ps.Extensions)
			if err != nil {
				return def, fmt.Errorf("schema %q field %q: %w", name, prop, err)
			}
			fd.Messages = msgs
		}
		def.Fields = append(def.Fields, fd)
	}
	return def, nil
}

func messagesFromExtensions(ext map[string]any) (map[string]string, error) {
	raw, ok := ext[MessagesExtension]
	if !ok || raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an object, got %T", MessagesExtension, raw)
	}

	out := make(map[string]string, len(m))
	for key, val := range m {
		msg, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("%s.%s must be a string, got %T", MessagesExtension, key, val)
		}
		out[key] = msg
	}
	return out, nil
}

// clampLength converts an OpenAPI length to int, saturating at math.MaxInt.
func clampLength(n uint64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
