package model

// Document is the parsed OpenAPI document reduced to what entity resolution
// needs. Operations is an explicit, stable list: paths in document order,
// methods in fixed order within a path. All "first seen" semantics downstream
// rely on this ordering and never on map iteration.
type Document struct {
	Info       Info
	Operations []Operation
	Schemas    *SchemaCatalog
}

type Info struct {
	Title       string
	Description string
	Version     string
}

type Operation struct {
	ID          string
	Method      Method
	Path        string
	Summary     string
	Description string
	Parameters  []Parameter
	RequestBody *RequestBody
	Responses   []Response
	Extensions  OperationExtensions
}

// OperationExtensions holds the x-sync-* vendor extensions, decoded at the
// loader boundary. SyncMode carries the raw declared string; validation into
// the closed SyncMode type happens during resolution.
type OperationExtensions struct {
	// SyncMode is the value of x-sync-mode ("api", "realtime", "offline").
	SyncMode string
	// LocalFirst is the legacy x-local-first boolean.
	LocalFirst *bool
	// SchemaVersion is x-schema-version, passed through unmodified for
	// offline-schema consumers.
	SchemaVersion *int
}

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

type ParameterLocation string

const (
	LocationPath   ParameterLocation = "path"
	LocationQuery  ParameterLocation = "query"
	LocationHeader ParameterLocation = "header"
	LocationCookie ParameterLocation = "cookie"
)

type Parameter struct {
	Name        string
	In          ParameterLocation
	Description string
	Required    bool
	Schema      *Schema
}

type RequestBody struct {
	Required bool
	Schema   *Schema
}

type Response struct {
	StatusCode string
	Schema     *Schema
}

// SyncMode declares how an entity's data is kept current on a client.
type SyncMode string

const (
	// SyncModeAPI is plain request/response; the default.
	SyncModeAPI SyncMode = "api"
	// SyncModeRealtime subscribes the client to push replication.
	SyncModeRealtime SyncMode = "realtime"
	// SyncModeOffline persists a replicated collection on the client.
	SyncModeOffline SyncMode = "offline"
)

// ParseSyncMode maps a declared string onto the closed SyncMode set.
func ParseSyncMode(s string) (SyncMode, bool) {
	switch SyncMode(s) {
	case SyncModeAPI, SyncModeRealtime, SyncModeOffline:
		return SyncMode(s), true
	}
	return "", false
}
