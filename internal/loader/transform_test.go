package loader

import (
	"testing"

	"github.com/pattern-stack/sync-patterns/internal/model"
	"github.com/stretchr/testify/require"
)

const sampleSpec = `openapi: 3.1.0
info:
  title: Account Service
  version: 1.2.0
paths:
  /api/v1/accounts:
    get:
      operationId: list_accounts
      x-sync-mode: realtime
      x-schema-version: 3
      parameters:
        - name: status
          in: query
          schema:
            type: string
            enum: [active, archived]
      responses:
        "200":
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/AccountListResponse"
    post:
      operationId: create_account
      x-local-first: true
      requestBody:
        required: true
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/AccountCreate"
      responses:
        "201":
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Account"
  /api/v1/accounts/{account_id}:
    get:
      operationId: get_account
      parameters:
        - name: account_id
          in: path
          required: true
          schema:
            type: string
      responses:
        "200":
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Account"
components:
  schemas:
    Account:
      type: object
      properties:
        id:
          type: string
        name:
          type: string
      required: [id]
    AccountCreate:
      type: object
      properties:
        name:
          type: string
    AccountListResponse:
      type: object
      properties:
        items:
          type: array
          items:
            $ref: "#/components/schemas/Account"
`

func loadSample(t *testing.T) *model.Document {
	t.Helper()
	result, err := Load([]byte(sampleSpec), nil)
	require.NoError(t, err)
	doc, err := Transform(result)
	require.NoError(t, err)
	return doc
}

func TestTransformOperationOrder(t *testing.T) {
	doc := loadSample(t)

	require.Equal(t, "Account Service", doc.Info.Title)
	require.Equal(t, "1.2.0", doc.Info.Version)

	var ids []string
	for _, op := range doc.Operations {
		ids = append(ids, op.ID)
	}
	// Paths in document order, methods in fixed order within each path.
	require.Equal(t, []string{"list_accounts", "create_account", "get_account"}, ids)

	require.Equal(t, model.MethodGet, doc.Operations[0].Method)
	require.Equal(t, model.MethodPost, doc.Operations[1].Method)
	require.Equal(t, "/api/v1/accounts/{account_id}", doc.Operations[2].Path)
}

func TestTransformExtensions(t *testing.T) {
	doc := loadSample(t)

	list := doc.Operations[0]
	require.Equal(t, "realtime", list.Extensions.SyncMode)
	require.Nil(t, list.Extensions.LocalFirst)
	require.NotNil(t, list.Extensions.SchemaVersion)
	require.Equal(t, 3, *list.Extensions.SchemaVersion)

	create := doc.Operations[1]
	require.Empty(t, create.Extensions.SyncMode)
	require.NotNil(t, create.Extensions.LocalFirst)
	require.True(t, *create.Extensions.LocalFirst)

	get := doc.Operations[2]
	require.Empty(t, get.Extensions.SyncMode)
	require.Nil(t, get.Extensions.LocalFirst)
	require.Nil(t, get.Extensions.SchemaVersion)
}

func TestTransformSchemaCatalog(t *testing.T) {
	doc := loadSample(t)

	require.Equal(t, []string{"Account", "AccountCreate", "AccountListResponse"}, doc.Schemas.Names())

	account := doc.Schemas.Lookup("Account")
	require.NotNil(t, account)
	require.Equal(t, model.TypeObject, account.Type)
	require.Len(t, account.Properties, 2)
	require.Equal(t, "id", account.Properties[0].Name)
	require.Equal(t, []string{"id"}, account.Required)

	list := doc.Schemas.Lookup("AccountListResponse")
	require.NotNil(t, list)
	require.Len(t, list.Properties, 1)
	items := list.Properties[0].Schema
	require.NotNil(t, items)
	require.NotNil(t, items.Items)
	require.Equal(t, "Account", items.Items.RefName())
}

func TestTransformRequestAndResponses(t *testing.T) {
	doc := loadSample(t)

	create := doc.Operations[1]
	require.NotNil(t, create.RequestBody)
	require.True(t, create.RequestBody.Required)
	require.Equal(t, "AccountCreate", create.RequestBody.Schema.RefName())

	require.Len(t, create.Responses, 1)
	require.Equal(t, "201", create.Responses[0].StatusCode)
	require.Equal(t, "Account", create.Responses[0].Schema.RefName())

	list := doc.Operations[0]
	require.Len(t, list.Parameters, 1)
	status := list.Parameters[0]
	require.Equal(t, "status", status.Name)
	require.Equal(t, model.LocationQuery, status.In)
	require.NotNil(t, status.Schema)
	require.Len(t, status.Schema.Enum, 2)
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	_, err := Load([]byte("swagger: \"2.0\"\ninfo:\n  title: Old\n  version: \"1.0\"\npaths: {}\n"), nil)
	require.Error(t, err)
}
