package model

// EntityModel is the resolved view of an API: every REST resource detected in
// the document, keyed by its plural name, in first-seen document order. It is
// built once per resolution and read-only for every downstream consumer.
type EntityModel struct {
	Info     Info
	entities []*EntityDefinition
	byName   map[string]*EntityDefinition
}

func NewEntityModel(info Info) *EntityModel {
	return &EntityModel{
		Info:   info,
		byName: make(map[string]*EntityDefinition),
	}
}

// Entity returns the definition for a plural resource name, or nil.
func (m *EntityModel) Entity(name string) *EntityDefinition {
	return m.byName[name]
}

// Entities returns all definitions in first-seen order.
func (m *EntityModel) Entities() []*EntityDefinition {
	return m.entities
}

// Add registers a definition under its plural name. If the name is already
// present the existing definition is returned unchanged, keeping keys unique
// and order stable.
func (m *EntityModel) Add(def *EntityDefinition) *EntityDefinition {
	if existing, ok := m.byName[def.Name]; ok {
		return existing
	}
	m.entities = append(m.entities, def)
	m.byName[def.Name] = def
	return def
}

// EntityDefinition describes one REST resource: its optional CRUD operations,
// its custom operations, the schema names linked to it, and its sync mode.
type EntityDefinition struct {
	Name       string // plural, as it appears in the path
	Singular   string
	PascalName string

	List   *OperationDefinition
	Get    *OperationDefinition
	Create *OperationDefinition
	Update *OperationDefinition
	Delete *OperationDefinition

	MetadataOperation *OperationDefinition
	CustomOperations  []CustomOperation

	Schemas EntitySchemas

	SyncMode      SyncMode
	SchemaVersion *int
}

// CustomOperation is any entity-owned endpoint that is not CRUD or metadata.
// CallableName is the derived client method/hook name; disambiguating
// collisions between derived names is the emitters' job.
type CustomOperation struct {
	CallableName string
	Operation    OperationDefinition
}

// EntitySchemas holds the canonical type names linked to an entity. Unset
// slots mean "not detected"; emitters fall back to naming conventions.
type EntitySchemas struct {
	Item          string
	ListResponse  string
	CreateRequest string
	UpdateRequest string
}

type OperationDefinition struct {
	OperationID string
	Method      Method
	Path        string
	Summary     string
	Description string

	// PathParams preserve path-template appearance order.
	PathParams  []ParamDefinition
	QueryParams []ParamDefinition

	RequestSchema  *SchemaRefInfo
	ResponseSchema *SchemaRefInfo
}

type ParamDefinition struct {
	Name       string
	Type       string // OpenAPI primitive type ("string", "integer", ...)
	Required   bool
	EnumValues []any
}

// SchemaRefInfo names a request or response schema. ArrayProperty is set when
// the response is a paginated envelope wrapping its list in a named property.
type SchemaRefInfo struct {
	Name          string
	IsArray       bool
	ArrayProperty string
}

// Operations returns every operation attributed to the entity: populated CRUD
// slots, the metadata operation, then custom operations in document order.
func (e *EntityDefinition) Operations() []*OperationDefinition {
	var ops []*OperationDefinition
	for _, op := range []*OperationDefinition{e.List, e.Get, e.Create, e.Update, e.Delete, e.MetadataOperation} {
		if op != nil {
			ops = append(ops, op)
		}
	}
	for i := range e.CustomOperations {
		ops = append(ops, &e.CustomOperations[i].Operation)
	}
	return ops
}
