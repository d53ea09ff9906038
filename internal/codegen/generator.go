package codegen

import (
	"fmt"

	"github.com/pattern-stack/sync-patterns/internal/config"
	"github.com/pattern-stack/sync-patterns/internal/model"
	"github.com/pattern-stack/sync-patterns/internal/targets/apiclient"
	"github.com/pattern-stack/sync-patterns/internal/targets/collections"
	"github.com/pattern-stack/sync-patterns/internal/targets/hooks"
	"github.com/pattern-stack/sync-patterns/internal/targets/schemas"
	"github.com/pattern-stack/sync-patterns/internal/templates"
	"github.com/pattern-stack/sync-patterns/internal/ts"
	embeddedtmpl "github.com/pattern-stack/sync-patterns/templates"
)

type Generator struct {
	config *config.Config
	engine templates.Engine
}

type Output struct {
	Filename string
	Content  string
}

func New(cfg *config.Config) (*Generator, error) {
	engine, err := templates.NewEngine(embeddedtmpl.FS, cfg.Templates.Dir, ts.TemplateFuncs())
	if err != nil {
		return nil, fmt.Errorf("creating template engine: %w", err)
	}

	return &Generator{
		config: cfg,
		engine: engine,
	}, nil
}

// Generate renders the configured targets from the resolved entity model. The
// schemas target additionally reads the document's schema catalog to emit
// real interfaces for linked types.
func (g *Generator) Generate(em *model.EntityModel, catalog *model.SchemaCatalog) ([]Output, error) {
	entities := ts.BindEntities(em)
	var outputs []Output

	if g.config.HasTarget("schemas") {
		target := schemas.New()
		content, err := target.Generate(g.engine, entities, catalog)
		if err != nil {
			return nil, fmt.Errorf("generating schemas: %w", err)
		}
		outputs = append(outputs, Output{Filename: "schemas.ts", Content: content})
	}

	if g.config.HasTarget("api") {
		target := apiclient.New()
		content, err := target.Generate(g.engine, entities, g.config.TS.APIBase)
		if err != nil {
			return nil, fmt.Errorf("generating api client: %w", err)
		}
		outputs = append(outputs, Output{Filename: "api.ts", Content: content})
	}

	if g.config.HasTarget("hooks") {
		target := hooks.New()
		content, err := target.Generate(g.engine, entities, g.config.TS.QueryKeyPrefix)
		if err != nil {
			return nil, fmt.Errorf("generating hooks: %w", err)
		}
		outputs = append(outputs, Output{Filename: "hooks.ts", Content: content})
	}

	if g.config.HasTarget("collections") && !collections.Empty(entities) {
		target := collections.New()
		content, err := target.Generate(g.engine, entities)
		if err != nil {
			return nil, fmt.Errorf("generating collections: %w", err)
		}
		outputs = append(outputs, Output{Filename: "collections.ts", Content: content})
	}

	return outputs, nil
}
