package loader

import (
	"strconv"
	"strings"

	"github.com/pattern-stack/sync-patterns/internal/model"
	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"github.com/pb33f/libopenapi/orderedmap"
	"go.yaml.in/yaml/v4"
)

type transformer struct {
	componentSchemas map[*base.Schema]string
}

// Transform reduces a parsed OpenAPI document to the model the entity
// resolver consumes. Operations come out as one flat, stable list: paths in
// document order, methods in fixed order within each path.
func Transform(result *Result) (*model.Document, error) {
	docModel := result.Document.Model

	t := &transformer{
		componentSchemas: make(map[*base.Schema]string),
	}

	doc := &model.Document{
		Info:    transformInfo(docModel.Info),
		Schemas: model.NewSchemaCatalog(),
	}

	if docModel.Components != nil && docModel.Components.Schemas != nil {
		for name, schemaProxy := range docModel.Components.Schemas.FromOldest() {
			t.componentSchemas[schemaProxy.Schema()] = "#/components/schemas/" + name
		}
		for name, schemaProxy := range docModel.Components.Schemas.FromOldest() {
			schema := t.transformSchema(name, schemaProxy.Schema())
			if schema != nil {
				doc.Schemas.Add(name, schema)
			}
		}
	}

	if docModel.Paths != nil {
		for pathStr, pathItem := range docModel.Paths.PathItems.FromOldest() {
			doc.Operations = append(doc.Operations, t.transformPath(pathStr, pathItem)...)
		}
	}

	return doc, nil
}

func transformInfo(info *base.Info) model.Info {
	if info == nil {
		return model.Info{}
	}
	return model.Info{
		Title:       info.Title,
		Description: info.Description,
		Version:     info.Version,
	}
}

func (t *transformer) transformPath(pathStr string, pathItem *v3.PathItem) []model.Operation {
	// Use a slice for deterministic ordering
	methods := []struct {
		method model.Method
		op     *v3.Operation
	}{
		{model.MethodGet, pathItem.Get},
		{model.MethodPost, pathItem.Post},
		{model.MethodPut, pathItem.Put},
		{model.MethodDelete, pathItem.Delete},
		{model.MethodPatch, pathItem.Patch},
		{model.MethodHead, pathItem.Head},
		{model.MethodOptions, pathItem.Options},
	}

	var ops []model.Operation
	for _, m := range methods {
		if m.op == nil {
			continue
		}
		ops = append(ops, t.transformOperation(m.method, pathStr, m.op))
	}
	return ops
}

func (t *transformer) transformOperation(method model.Method, path string, op *v3.Operation) model.Operation {
	operation := model.Operation{
		ID:          op.OperationId,
		Method:      method,
		Path:        path,
		Summary:     op.Summary,
		Description: op.Description,
		Extensions:  parseExtensions(op.Extensions),
	}

	for _, p := range op.Parameters {
		operation.Parameters = append(operation.Parameters, t.transformParameter(p))
	}

	if op.RequestBody != nil {
		operation.RequestBody = t.transformRequestBody(op.RequestBody)
	}

	if op.Responses != nil && op.Responses.Codes != nil {
		for code, resp := range op.Responses.Codes.FromOldest() {
			operation.Responses = append(operation.Responses, model.Response{
				StatusCode: code,
				Schema:     t.jsonContentSchema(resp.Content),
			})
		}
	}

	return operation
}

func (t *transformer) transformParameter(p *v3.Parameter) model.Parameter {
	param := model.Parameter{
		Name:        p.Name,
		In:          model.ParameterLocation(strings.ToLower(p.In)),
		Description: p.Description,
		Required:    boolPtr(p.Required),
	}
	if p.Schema != nil {
		param.Schema = t.transformSchemaProxy(p.Schema)
	}
	return param
}

func (t *transformer) transformRequestBody(rb *v3.RequestBody) *model.RequestBody {
	schema := t.jsonContentSchema(rb.Content)
	if schema == nil {
		return nil
	}
	return &model.RequestBody{
		Required: boolPtr(rb.Required),
		Schema:   schema,
	}
}

// jsonContentSchema picks the schema of the JSON media type. Only JSON bodies
// participate in entity resolution.
func (t *transformer) jsonContentSchema(content *orderedmap.Map[string, *v3.MediaType]) *model.Schema {
	if content == nil {
		return nil
	}
	for mediaType, mt := range content.FromOldest() {
		if !strings.HasPrefix(mediaType, "application/json") {
			continue
		}
		if mt.Schema != nil {
			return t.transformSchemaProxy(mt.Schema)
		}
	}
	return nil
}

func (t *transformer) transformSchemaProxy(proxy *base.SchemaProxy) *model.Schema {
	if proxy == nil {
		return nil
	}

	ref := proxy.GetReference()
	if ref == "" {
		if resolved, ok := t.componentSchemas[proxy.Schema()]; ok {
			return &model.Schema{Ref: resolved}
		}
	}

	schema := t.transformSchema("", proxy.Schema())
	if schema != nil && ref != "" {
		schema.Ref = ref
	}
	return schema
}

func (t *transformer) transformSchema(name string, s *base.Schema) *model.Schema {
	if s == nil {
		return nil
	}

	schema := &model.Schema{
		Name:        name,
		Description: s.Description,
		Format:      s.Format,
	}

	if len(s.Type) > 0 {
		schema.Type = model.SchemaType(s.Type[0])
	}

	if s.Enum != nil {
		for _, e := range s.Enum {
			schema.Enum = append(schema.Enum, e.Value)
		}
	}

	if s.Properties != nil {
		for propName, propProxy := range s.Properties.FromOldest() {
			propSchema := t.transformSchemaProxy(propProxy)
			if propSchema != nil && propSchema.Name == "" {
				propSchema.Name = propName
			}
			schema.Properties = append(schema.Properties, model.Property{
				Name:   propName,
				Schema: propSchema,
			})
		}
	}

	schema.Required = s.Required

	if s.Items != nil && s.Items.A != nil {
		schema.Items = t.transformSchemaProxy(s.Items.A)
	}

	return schema
}

// Vendor extension keys declaring how an entity's data is synced.
const (
	extSyncMode      = "x-sync-mode"
	extLocalFirst    = "x-local-first"
	extSchemaVersion = "x-schema-version"
)

// parseExtensions decodes the sync vendor extensions into a typed struct.
// Raw yaml nodes never leave the loader.
func parseExtensions(extensions *orderedmap.Map[string, *yaml.Node]) model.OperationExtensions {
	var ext model.OperationExtensions
	if extensions == nil {
		return ext
	}

	for pair := extensions.First(); pair != nil; pair = pair.Next() {
		key := pair.Key()
		node := pair.Value()
		if node == nil || node.Kind != yaml.ScalarNode {
			continue
		}

		switch key {
		case extSyncMode:
			ext.SyncMode = node.Value
		case extLocalFirst:
			v := node.Value == "true"
			ext.LocalFirst = &v
		case extSchemaVersion:
			if v, err := strconv.Atoi(node.Value); err == nil {
				ext.SchemaVersion = &v
			}
		}
	}

	return ext
}

func boolPtr(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
