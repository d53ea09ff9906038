package hooks

import (
	"github.com/pattern-stack/sync-patterns/internal/templates"
	"github.com/pattern-stack/sync-patterns/internal/ts"
)

// Target emits reactive-query hooks: queries for list/get, mutations for
// create/update/delete, and one hook per custom operation. Derived hook names
// that collide within an entity are disambiguated here with a method suffix;
// the resolver guarantees slot placement only, never name uniqueness.
type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "hooks"
}

type templateData struct {
	QueryKeyPrefix string
	Types          []string
	Entities       []entityData
}

type entityData struct {
	ts.Entity
	ListHook   string
	GetHook    string
	CreateHook string
	UpdateHook string
	DeleteHook string
	Custom     []customHook
}

type customHook struct {
	ts.Operation
	HookName string
	// Queries use useQuery, everything else a mutation.
	IsQuery bool
}

// HasVars reports whether the mutation takes any input at all.
func (h customHook) HasVars() bool {
	return len(h.PathParams) > 0 || len(h.QueryParams) > 0 || h.RequestType != ""
}

func (t *Target) Generate(engine templates.Engine, entities []ts.Entity, queryKeyPrefix string) (string, error) {
	data := templateData{
		QueryKeyPrefix: queryKeyPrefix,
		Types:          ts.ReferencedTypes(entities),
	}
	for _, e := range entities {
		data.Entities = append(data.Entities, bindHooks(e))
	}
	return engine.Execute("hooks.ts.tmpl", data)
}

func bindHooks(e ts.Entity) entityData {
	pluralPascal := ts.PascalCase(e.Name)
	ent := entityData{Entity: e}

	used := make(map[string]bool)
	claim := func(name, method string) string {
		if !used[name] {
			used[name] = true
			return name
		}
		// Method-derived suffix for colliding derived names.
		name += ts.PascalCase(method)
		used[name] = true
		return name
	}

	if e.List != nil {
		ent.ListHook = claim("use"+pluralPascal, e.List.Method)
	}
	if e.Get != nil {
		ent.GetHook = claim("use"+e.Pascal, e.Get.Method)
	}
	if e.Create != nil {
		ent.CreateHook = claim("useCreate"+e.Pascal, e.Create.Method)
	}
	if e.Update != nil {
		ent.UpdateHook = claim("useUpdate"+e.Pascal, e.Update.Method)
	}
	if e.Delete != nil {
		ent.DeleteHook = claim("useDelete"+e.Pascal, e.Delete.Method)
	}

	for _, op := range e.Custom {
		hook := customHook{
			Operation: op,
			HookName:  claim("use"+ts.PascalCase(op.Name)+e.Pascal, op.Method),
			IsQuery:   op.Method == "GET",
		}
		ent.Custom = append(ent.Custom, hook)
	}

	return ent
}
