package resolver

import (
	"fmt"
	"regexp"

	"github.com/pattern-stack/sync-patterns/internal/model"
)

// Resolver turns a parsed OpenAPI document into an EntityModel: one pass over
// the document's operations, building entities lazily and filling slots with
// first-write-wins semantics. Resolution is a pure function of the document;
// the returned model is read-only afterwards.
type Resolver struct {
	namer      Namer
	classifier *Classifier
}

type Option func(*Resolver)

// WithNamer substitutes the naming strategy used for singularization and
// custom-operation name derivation.
func WithNamer(n Namer) Option {
	return func(r *Resolver) {
		r.namer = n
	}
}

func New(opts ...Option) *Resolver {
	r := &Resolver{namer: DefaultNamer{}}
	for _, opt := range opts {
		opt(r)
	}
	r.classifier = NewClassifier(r.namer)
	return r
}

// Resolve builds the entity model. The only hard errors are structural
// violations of the input itself: an operation with no method or no path.
// Everything else degrades: unattributable paths are skipped and
// unclassifiable operations land in customOperations.
func (r *Resolver) Resolve(doc *model.Document) (*model.EntityModel, error) {
	em := model.NewEntityModel(doc.Info)
	linker := newSchemaLinker(doc.Schemas)
	modeFixed := make(map[string]bool)

	for i := range doc.Operations {
		op := doc.Operations[i]
		if op.Method == "" {
			return nil, fmt.Errorf("operation %q (path %s) has no HTTP method", op.ID, op.Path)
		}
		if op.Path == "" {
			return nil, fmt.Errorf("operation %q has no path", op.ID)
		}

		name := ResourceName(op.Path)
		if name == "" {
			continue
		}

		// Exact plural-name match first, then ownership: a singular or
		// underscore-prefixed path segment joins the entity that owns it
		// instead of spawning a second one.
		ent := em.Entity(name)
		if ent == nil {
			for _, existing := range em.Entities() {
				if r.classifier.Owns(op.Path, existing.Name) {
					ent = existing
					break
				}
			}
		}
		if ent == nil {
			singular := r.namer.Singularize(name)
			ent = em.Add(&model.EntityDefinition{
				Name:       name,
				Singular:   singular,
				PascalName: r.namer.PascalCase(singular),
				SyncMode:   model.SyncModeAPI,
			})
		}

		if !modeFixed[ent.Name] && syncModeDeclared(op.Extensions) {
			ent.SyncMode = ResolveSyncMode(op.Extensions)
			modeFixed[ent.Name] = true
		}
		if ent.SchemaVersion == nil && op.Extensions.SchemaVersion != nil {
			ent.SchemaVersion = op.Extensions.SchemaVersion
		}

		kind := r.classifier.Classify(op, ent.Name)
		def := buildOperationDefinition(op)
		linker.Link(op, kind, def, ent)

		r.assign(ent, kind, op, def)
	}

	return em, nil
}

// assign places the definition in its slot. Occupied CRUD and metadata slots
// demote later matches to custom so every operation still lands exactly once.
func (r *Resolver) assign(ent *model.EntityDefinition, kind Kind, op model.Operation, def *model.OperationDefinition) {
	var slot **model.OperationDefinition
	switch kind {
	case KindList:
		slot = &ent.List
	case KindGet:
		slot = &ent.Get
	case KindCreate:
		slot = &ent.Create
	case KindUpdate:
		slot = &ent.Update
	case KindDelete:
		slot = &ent.Delete
	case KindMetadata:
		slot = &ent.MetadataOperation
	}

	if slot != nil && *slot == nil {
		*slot = def
		return
	}

	ent.CustomOperations = append(ent.CustomOperations, model.CustomOperation{
		CallableName: r.classifier.CallableName(op, ent.Name),
		Operation:    *def,
	})
}

var pathParamPattern = regexp.MustCompile(`\{([^}]+)\}`)

func buildOperationDefinition(op model.Operation) *model.OperationDefinition {
	def := &model.OperationDefinition{
		OperationID: op.ID,
		Method:      op.Method,
		Path:        op.Path,
		Summary:     op.Summary,
		Description: op.Description,
	}

	declared := make(map[string]model.Parameter)
	for _, p := range op.Parameters {
		switch p.In {
		case model.LocationPath:
			declared[p.Name] = p
		case model.LocationQuery:
			def.QueryParams = append(def.QueryParams, model.ParamDefinition{
				Name:       p.Name,
				Type:       paramType(p.Schema),
				Required:   p.Required,
				EnumValues: enumValues(p.Schema),
			})
		}
	}

	// Path parameters follow path-template appearance order, not the
	// document's parameter list order. Placeholders without a declaration
	// still appear: the path template is authoritative.
	for _, match := range pathParamPattern.FindAllStringSubmatch(op.Path, -1) {
		name := match[1]
		if p, ok := declared[name]; ok {
			def.PathParams = append(def.PathParams, model.ParamDefinition{
				Name:     p.Name,
				Type:     paramType(p.Schema),
				Required: true,
			})
			continue
		}
		def.PathParams = append(def.PathParams, model.ParamDefinition{
			Name:     name,
			Type:     "string",
			Required: true,
		})
	}

	return def
}

func paramType(s *model.Schema) string {
	if s == nil || s.Type == "" {
		return "string"
	}
	return string(s.Type)
}

func enumValues(s *model.Schema) []any {
	if s == nil {
		return nil
	}
	return s.Enum
}
