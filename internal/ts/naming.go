package ts

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/pattern-stack/sync-patterns/internal/model"
	"github.com/pattern-stack/sync-patterns/internal/resolver"
)

var namer = resolver.DefaultNamer{}

// Type maps an OpenAPI primitive type onto its TypeScript counterpart.
func Type(openapiType string) string {
	switch openapiType {
	case "integer", "number":
		return "number"
	case "boolean":
		return "boolean"
	case "array":
		return "unknown[]"
	case "object":
		return "Record<string, unknown>"
	default:
		return "string"
	}
}

// EnumUnion renders enum values as a TypeScript literal union, falling back
// to the mapped primitive type when no values are present.
func EnumUnion(values []any, openapiType string) string {
	if len(values) == 0 {
		return Type(openapiType)
	}
	parts := make([]string, 0, len(values))
	for _, v := range values {
		switch v := v.(type) {
		case string:
			parts = append(parts, fmt.Sprintf("%q", v))
		default:
			parts = append(parts, fmt.Sprintf("%v", v))
		}
	}
	return strings.Join(parts, " | ")
}

// TypeOf renders a document schema as a TypeScript type expression.
// References render by component name; everything unmappable is unknown.
func TypeOf(s *model.Schema) string {
	if s == nil {
		return "unknown"
	}
	if name := s.RefName(); name != "" {
		return name
	}
	if len(s.Enum) > 0 {
		return EnumUnion(s.Enum, string(s.Type))
	}
	switch s.Type {
	case model.TypeArray:
		return TypeOf(s.Items) + "[]"
	case model.TypeObject:
		return "Record<string, unknown>"
	case model.TypeInteger, model.TypeNumber:
		return "number"
	case model.TypeBoolean:
		return "boolean"
	case model.TypeString:
		return "string"
	case model.TypeNull:
		return "null"
	}
	return "unknown"
}

// PathTemplate rewrites an OpenAPI path template as a TypeScript template
// literal body: "/accounts/{account_id}" becomes "/accounts/${accountId}".
func PathTemplate(path string) string {
	var b strings.Builder
	rest := path
	for {
		open := strings.Index(rest, "{")
		if open < 0 {
			b.WriteString(rest)
			return b.String()
		}
		close := strings.Index(rest[open:], "}")
		if close < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:open])
		b.WriteString("${")
		b.WriteString(namer.CamelCase(rest[open+1 : open+close]))
		b.WriteString("}")
		rest = rest[open+close+1:]
	}
}

func CamelCase(s string) string {
	return namer.CamelCase(s)
}

func PascalCase(s string) string {
	return namer.PascalCase(s)
}

// QueryKey renders non-empty parts as a comma-separated list of string
// literals for a reactive-query key.
func QueryKey(parts ...string) string {
	var quoted []string
	for _, p := range parts {
		if p == "" {
			continue
		}
		quoted = append(quoted, fmt.Sprintf("%q", p))
	}
	return strings.Join(quoted, ", ")
}

// TemplateFuncs returns the helpers the TypeScript templates use.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"tsType":       Type,
		"enumUnion":    EnumUnion,
		"pathTemplate": PathTemplate,
		"camel":        CamelCase,
		"pascal":       PascalCase,
		"lower":        strings.ToLower,
		"queryKey":     QueryKey,
	}
}
