package resolver

import (
	"strings"

	"github.com/pattern-stack/sync-patterns/internal/model"
)

// schemaLinker associates canonical schema type names with entities by
// inspecting request bodies and 2xx responses of classified operations.
type schemaLinker struct {
	catalog *model.SchemaCatalog
}

func newSchemaLinker(catalog *model.SchemaCatalog) *schemaLinker {
	return &schemaLinker{catalog: catalog}
}

// setIfAbsent keeps the first schema written to a slot. Every entity schema
// slot write funnels through here.
func setIfAbsent(slot *string, name string) {
	if *slot == "" && name != "" {
		*slot = name
	}
}

// Link records the operation's schemas on its definition and fills the owning
// entity's schema slots. Slots already set are never overwritten; operations
// with missing or unnamed schemas leave them unset.
func (l *schemaLinker) Link(op model.Operation, kind Kind, def *model.OperationDefinition, ent *model.EntityDefinition) {
	switch kind {
	case KindCreate, KindUpdate:
		if info := l.requestSchema(op); info != nil {
			def.RequestSchema = info
			if kind == KindCreate {
				setIfAbsent(&ent.Schemas.CreateRequest, info.Name)
			} else {
				setIfAbsent(&ent.Schemas.UpdateRequest, info.Name)
			}
		}
	}

	switch kind {
	case KindList, KindGet, KindCreate, KindUpdate:
		info := l.responseSchema(op)
		if info == nil {
			return
		}
		def.ResponseSchema = info
		switch kind {
		case KindList:
			setIfAbsent(&ent.Schemas.ListResponse, info.Name)
		case KindGet:
			// A bare named-schema response is the canonical item type.
			if !info.IsArray {
				setIfAbsent(&ent.Schemas.Item, info.Name)
			}
		}
	}
}

func (l *schemaLinker) requestSchema(op model.Operation) *model.SchemaRefInfo {
	if op.RequestBody == nil || op.RequestBody.Schema == nil {
		return nil
	}
	schema := op.RequestBody.Schema

	if schema.Type == model.TypeArray && schema.Items != nil {
		if name := schema.Items.RefName(); name != "" {
			return &model.SchemaRefInfo{Name: name, IsArray: true}
		}
		return nil
	}
	if name := schema.RefName(); name != "" {
		return &model.SchemaRefInfo{Name: name}
	}
	return nil
}

func (l *schemaLinker) responseSchema(op model.Operation) *model.SchemaRefInfo {
	var schema *model.Schema
	for _, resp := range op.Responses {
		if strings.HasPrefix(resp.StatusCode, "2") && resp.Schema != nil {
			schema = resp.Schema
			break
		}
	}
	if schema == nil {
		return nil
	}

	// Response that is itself an array.
	if schema.Type == model.TypeArray {
		info := &model.SchemaRefInfo{IsArray: true}
		if schema.Items != nil {
			info.Name = schema.Items.RefName()
		}
		if info.Name == "" {
			return nil
		}
		return info
	}

	name := schema.RefName()
	target := schema
	if name != "" {
		if resolved := l.catalog.Lookup(name); resolved != nil {
			target = resolved
		}
	}

	info := &model.SchemaRefInfo{Name: name}
	if prop, ok := singleArrayProperty(target); ok {
		info.IsArray = true
		// Paginated-envelope convention.
		if prop == "items" {
			info.ArrayProperty = prop
		}
	}
	if info.Name == "" && !info.IsArray {
		return nil
	}
	return info
}

// singleArrayProperty reports the name of an object schema's only
// array-typed property, if it has exactly one.
func singleArrayProperty(s *model.Schema) (string, bool) {
	if s == nil {
		return "", false
	}
	var found string
	count := 0
	for _, prop := range s.Properties {
		if prop.Schema != nil && prop.Schema.Type == model.TypeArray {
			found = prop.Name
			count++
		}
	}
	if count == 1 {
		return found, true
	}
	return "", false
}
