package codegen

import (
	"testing"

	"github.com/pattern-stack/sync-patterns/internal/config"
	"github.com/pattern-stack/sync-patterns/internal/loader"
	"github.com/pattern-stack/sync-patterns/internal/resolver"
	"github.com/stretchr/testify/require"
)

const sampleSpec = `openapi: 3.1.0
info:
  title: Account Service
  version: 1.0.0
paths:
  /api/v1/accounts:
    get:
      operationId: list_accounts_api_v1_accounts_get
      x-sync-mode: offline
      x-schema-version: 2
      parameters:
        - name: status
          in: query
          schema:
            type: string
      responses:
        "200":
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/AccountListResponse"
    post:
      operationId: create_account_api_v1_accounts_post
      requestBody:
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
      operationId: get_account_api_v1_accounts__account_id__get
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
      required: [id, name]
    AccountCreate:
      type: object
      properties:
        name:
          type: string
      required: [name]
    AccountListResponse:
      type: object
      properties:
        items:
          type: array
          items:
            $ref: "#/components/schemas/Account"
`

func generateAll(t *testing.T) map[string]string {
	t.Helper()

	result, err := loader.Load([]byte(sampleSpec), nil)
	require.NoError(t, err)
	doc, err := loader.Transform(result)
	require.NoError(t, err)

	em, err := resolver.New().Resolve(doc)
	require.NoError(t, err)

	cfg := &config.Config{
		Spec: "inline",
		TS: config.TSConfig{
			OutputDir:      "out",
			APIBase:        "/api/v1",
			QueryKeyPrefix: "app",
			Targets:        []string{"api", "hooks", "collections", "schemas"},
		},
	}

	gen, err := New(cfg)
	require.NoError(t, err)

	outputs, err := gen.Generate(em, doc.Schemas)
	require.NoError(t, err)

	byName := make(map[string]string, len(outputs))
	for _, o := range outputs {
		byName[o.Filename] = o.Content
	}
	return byName
}

func TestGenerateEmitsAllTargets(t *testing.T) {
	outputs := generateAll(t)

	require.Contains(t, outputs, "api.ts")
	require.Contains(t, outputs, "hooks.ts")
	require.Contains(t, outputs, "schemas.ts")
	// The sample declares an offline entity, so collections is non-empty.
	require.Contains(t, outputs, "collections.ts")
}

func TestGenerateAPIClient(t *testing.T) {
	api := generateAll(t)["api.ts"]

	require.Contains(t, api, "export class AccountApi")
	require.Contains(t, api, "const API_BASE = \"/api/v1\"")
	require.Contains(t, api, "list(")
	require.Contains(t, api, "${accountId}")
	require.Contains(t, api, "import type {")
	require.Contains(t, api, "Account,")
}

func TestGenerateHooks(t *testing.T) {
	hooks := generateAll(t)["hooks.ts"]

	require.Contains(t, hooks, "useAccounts")
	require.Contains(t, hooks, "useAccount")
	require.Contains(t, hooks, "useCreateAccount")
	require.Contains(t, hooks, "@tanstack/react-query")
	// Query keys carry the configured prefix.
	require.Contains(t, hooks, "\"app\"")
}

func TestGenerateCollections(t *testing.T) {
	collections := generateAll(t)["collections.ts"]

	require.Contains(t, collections, "offlineCollections")
	require.Contains(t, collections, "accounts")
	require.Contains(t, collections, "schemaVersion: 2")
}

func TestGenerateSchemas(t *testing.T) {
	schemas := generateAll(t)["schemas.ts"]

	require.Contains(t, schemas, "export interface Account {")
	require.Contains(t, schemas, "export interface AccountCreate {")
	require.Contains(t, schemas, "export interface AccountListResponse {")
	// name is required on Account, so no optional marker.
	require.Contains(t, schemas, "\"name\": string;")
	require.NotContains(t, schemas, "\"name\"?: string;")
}

func TestGenerateRespectsTargets(t *testing.T) {
	result, err := loader.Load([]byte(sampleSpec), nil)
	require.NoError(t, err)
	doc, err := loader.Transform(result)
	require.NoError(t, err)

	em, err := resolver.New().Resolve(doc)
	require.NoError(t, err)

	cfg := &config.Config{
		Spec: "inline",
		TS: config.TSConfig{
			OutputDir: "out",
			APIBase:   "/api/v1",
			Targets:   []string{"api"},
		},
	}

	gen, err := New(cfg)
	require.NoError(t, err)

	outputs, err := gen.Generate(em, doc.Schemas)
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	require.Equal(t, "api.ts", outputs[0].Filename)
}
