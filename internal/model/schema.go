package model

import "strings"

type Schema struct {
	Name        string
	Description string
	Type        SchemaType
	Format      string

	// Object properties
	Properties []Property
	Required   []string

	// Array items
	Items *Schema

	// Enum values
	Enum []any

	// Reference (e.g. "#/components/schemas/Account")
	Ref string
}

type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
	TypeNull    SchemaType = "null"
)

type Property struct {
	Name   string
	Schema *Schema
}

// RefName returns the component name of a $ref path, or "" for inline schemas.
func (s *Schema) RefName() string {
	if s == nil || s.Ref == "" {
		return ""
	}
	parts := strings.Split(s.Ref, "/")
	return parts[len(parts)-1]
}

// SchemaCatalog is a read-only index of the document's named component
// schemas. It is built by the loader; resolution only reads it.
type SchemaCatalog struct {
	names   []string
	schemas map[string]*Schema
}

func NewSchemaCatalog() *SchemaCatalog {
	return &SchemaCatalog{schemas: make(map[string]*Schema)}
}

// Add registers a named schema. Later registrations of the same name are
// ignored so the catalog stays consistent with first-seen document order.
func (c *SchemaCatalog) Add(name string, schema *Schema) {
	if _, ok := c.schemas[name]; ok {
		return
	}
	c.names = append(c.names, name)
	c.schemas[name] = schema
}

// Lookup returns the named schema, or nil if the document does not define it.
func (c *SchemaCatalog) Lookup(name string) *Schema {
	if c == nil {
		return nil
	}
	return c.schemas[name]
}

// Names returns the schema names in document order.
func (c *SchemaCatalog) Names() []string {
	if c == nil {
		return nil
	}
	return c.names
}

// Len reports how many named schemas the document defines.
func (c *SchemaCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.schemas)
}
