package schemas

import (
	"github.com/pattern-stack/sync-patterns/internal/model"
	"github.com/pattern-stack/sync-patterns/internal/templates"
	"github.com/pattern-stack/sync-patterns/internal/ts"
)

// Target emits schemas.ts: a TypeScript interface for every linked schema the
// document defines, plus placeholder declarations for convention-named types
// that have no document schema behind them, so the client and hooks always
// have something to import.
type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "schemas"
}

type templateData struct {
	Interfaces   []interfaceData
	Placeholders []string
}

type interfaceData struct {
	Name   string
	Fields []fieldData
}

type fieldData struct {
	Name     string
	Type     string
	Optional bool
}

func (t *Target) Generate(engine templates.Engine, entities []ts.Entity, catalog *model.SchemaCatalog) (string, error) {
	var data templateData
	emitted := make(map[string]bool)

	// Transitive closure: interfaces pull in the schemas their fields
	// reference.
	queue := ts.ReferencedTypes(entities)
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if emitted[name] {
			continue
		}
		emitted[name] = true

		schema := catalog.Lookup(name)
		if schema == nil {
			data.Placeholders = append(data.Placeholders, name)
			continue
		}
		data.Interfaces = append(data.Interfaces, bindInterface(name, schema))
		for _, prop := range schema.Properties {
			queue = append(queue, refNames(prop.Schema)...)
		}
	}

	return engine.Execute("schemas.ts.tmpl", data)
}

func refNames(s *model.Schema) []string {
	if s == nil {
		return nil
	}
	if name := s.RefName(); name != "" {
		return []string{name}
	}
	if s.Type == model.TypeArray {
		return refNames(s.Items)
	}
	return nil
}

func bindInterface(name string, schema *model.Schema) interfaceData {
	required := make(map[string]bool)
	for _, r := range schema.Required {
		required[r] = true
	}

	iface := interfaceData{Name: name}
	for _, prop := range schema.Properties {
		iface.Fields = append(iface.Fields, fieldData{
			Name:     prop.Name,
			Type:     ts.TypeOf(prop.Schema),
			Optional: !required[prop.Name],
		})
	}
	return iface
}
