package ts

import (
	"github.com/pattern-stack/sync-patterns/internal/model"
)

// Entity is the template-facing view of a resolved entity: names and types
// flattened to strings, with naming-convention fallbacks already applied for
// schema slots the resolver left unset.
type Entity struct {
	Name     string // plural resource name, e.g. "accounts"
	Singular string
	Pascal   string // e.g. "Account"

	SyncMode      string
	SchemaVersion *int

	ItemType          string
	ListResponseType  string
	CreateRequestType string
	UpdateRequestType string

	List     *Operation
	Get      *Operation
	Create   *Operation
	Update   *Operation
	Delete   *Operation
	Metadata *Operation
	Custom   []Operation
}

type Operation struct {
	Name        string // client method / base hook name
	OperationID string
	Method      string
	Path        string // TypeScript template-literal body
	Summary     string

	PathParams  []Param
	QueryParams []Param

	RequestType  string // empty when the operation takes no body
	ResponseType string
}

func (o Operation) HasQueryParams() bool {
	return len(o.QueryParams) > 0
}

// HasRequiredQuery reports whether the query argument object can be optional.
func (o Operation) HasRequiredQuery() bool {
	for _, p := range o.QueryParams {
		if p.Required {
			return true
		}
	}
	return false
}

type Param struct {
	Name     string // wire name
	TSName   string // camelCase identifier
	TSType   string
	Required bool
}

// BindEntities flattens the entity model for the emitters.
func BindEntities(m *model.EntityModel) []Entity {
	var entities []Entity
	for _, def := range m.Entities() {
		entities = append(entities, bindEntity(def))
	}
	return entities
}

func bindEntity(def *model.EntityDefinition) Entity {
	e := Entity{
		Name:          def.Name,
		Singular:      def.Singular,
		Pascal:        def.PascalName,
		SyncMode:      string(def.SyncMode),
		SchemaVersion: def.SchemaVersion,
	}

	// Convention fallbacks for unset slots.
	e.ItemType = fallback(def.Schemas.Item, def.PascalName)
	e.ListResponseType = fallback(def.Schemas.ListResponse, e.ItemType+"[]")
	e.CreateRequestType = fallback(def.Schemas.CreateRequest, def.PascalName+"Create")
	e.UpdateRequestType = fallback(def.Schemas.UpdateRequest, def.PascalName+"Update")

	if def.List != nil {
		e.List = bindOperation("list", def.List)
		e.List.ResponseType = responseType(def.List, e.ListResponseType)
	}
	if def.Get != nil {
		e.Get = bindOperation("get", def.Get)
		e.Get.ResponseType = responseType(def.Get, e.ItemType)
	}
	if def.Create != nil {
		e.Create = bindOperation("create", def.Create)
		e.Create.RequestType = requestType(def.Create, e.CreateRequestType)
		e.Create.ResponseType = responseType(def.Create, e.ItemType)
	}
	if def.Update != nil {
		e.Update = bindOperation("update", def.Update)
		e.Update.RequestType = requestType(def.Update, e.UpdateRequestType)
		e.Update.ResponseType = responseType(def.Update, e.ItemType)
	}
	if def.Delete != nil {
		e.Delete = bindOperation("delete", def.Delete)
		e.Delete.ResponseType = "void"
	}
	if def.MetadataOperation != nil {
		e.Metadata = bindOperation("metadata", def.MetadataOperation)
		e.Metadata.ResponseType = responseType(def.MetadataOperation, "Record<string, unknown>")
	}

	for _, custom := range def.CustomOperations {
		op := bindOperation(custom.CallableName, &custom.Operation)
		op.RequestType = requestType(&custom.Operation, "")
		op.ResponseType = responseType(&custom.Operation, "unknown")
		e.Custom = append(e.Custom, *op)
	}

	return e
}

func bindOperation(name string, def *model.OperationDefinition) *Operation {
	op := &Operation{
		Name:        name,
		OperationID: def.OperationID,
		Method:      string(def.Method),
		Path:        PathTemplate(def.Path),
		Summary:     def.Summary,
	}
	for _, p := range def.PathParams {
		op.PathParams = append(op.PathParams, Param{
			Name:     p.Name,
			TSName:   CamelCase(p.Name),
			TSType:   Type(p.Type),
			Required: p.Required,
		})
	}
	for _, p := range def.QueryParams {
		op.QueryParams = append(op.QueryParams, Param{
			Name:     p.Name,
			TSName:   CamelCase(p.Name),
			TSType:   EnumUnion(p.EnumValues, p.Type),
			Required: p.Required,
		})
	}
	return op
}

func requestType(def *model.OperationDefinition, conventional string) string {
	if def.RequestSchema != nil && def.RequestSchema.Name != "" {
		name := def.RequestSchema.Name
		if def.RequestSchema.IsArray {
			return name + "[]"
		}
		return name
	}
	return conventional
}

func responseType(def *model.OperationDefinition, conventional string) string {
	rs := def.ResponseSchema
	if rs == nil || rs.Name == "" {
		return conventional
	}
	// A bare array response has no wrapper type to name.
	if rs.IsArray && rs.ArrayProperty == "" {
		return rs.Name + "[]"
	}
	return rs.Name
}

func fallback(value, conventional string) string {
	if value != "" {
		return value
	}
	return conventional
}

// Endpoint is the entity's collection endpoint: the list path when one
// exists, otherwise the conventional root.
func (e Entity) Endpoint() string {
	if e.List != nil {
		return e.List.Path
	}
	return "/" + e.Name
}

// SchemaVersionValue unwraps the passthrough schema version; absent means 1.
func (e Entity) SchemaVersionValue() int {
	if e.SchemaVersion != nil {
		return *e.SchemaVersion
	}
	return 1
}

// ReferencedTypes collects the importable schema type names the entities
// reference, in first-use order.
func ReferencedTypes(entities []Entity) []string {
	seen := make(map[string]bool)
	var types []string
	add := func(name string) {
		if name == "" || seen[name] || !Importable(name) {
			return
		}
		seen[name] = true
		types = append(types, name)
	}

	for _, e := range entities {
		add(e.ItemType)
		add(e.ListResponseType)
		add(e.CreateRequestType)
		add(e.UpdateRequestType)
		for _, op := range []*Operation{e.List, e.Get, e.Create, e.Update, e.Delete, e.Metadata} {
			if op == nil {
				continue
			}
			add(op.RequestType)
			add(op.ResponseType)
		}
		for i := range e.Custom {
			add(e.Custom[i].RequestType)
			add(e.Custom[i].ResponseType)
		}
	}
	return types
}

// Importable reports whether a type string is a plain named type rather than
// an array, union, or builtin.
func Importable(name string) bool {
	switch name {
	case "", "void", "unknown", "string", "number", "boolean", "null":
		return false
	}
	for _, r := range name {
		switch r {
		case '[', ']', '<', '>', ' ', '|', '"':
			return false
		}
	}
	return true
}
