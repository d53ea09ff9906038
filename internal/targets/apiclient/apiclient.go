package apiclient

import (
	"github.com/pattern-stack/sync-patterns/internal/templates"
	"github.com/pattern-stack/sync-patterns/internal/ts"
)

// Target emits the typed REST client: one class per entity with a method per
// populated CRUD slot and one per custom operation.
type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "api"
}

type templateData struct {
	APIBase  string
	Entities []ts.Entity
	Types    []string
}

func (t *Target) Generate(engine templates.Engine, entities []ts.Entity, apiBase string) (string, error) {
	data := templateData{
		APIBase:  apiBase,
		Entities: entities,
		Types:    ts.ReferencedTypes(entities),
	}
	return engine.Execute("api_client.ts.tmpl", data)
}
