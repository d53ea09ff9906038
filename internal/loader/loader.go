// Package loader parses an OpenAPI 3.x document and reduces it to the flat,
// stably ordered model that entity resolution consumes. The x-sync-* vendor
// extensions are decoded here; raw yaml nodes never leave this package.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
)

// Result carries the parsed document model. Warnings are advisory; the
// resolver runs regardless.
type Result struct {
	Document *libopenapi.DocumentModel[v3.Document]
	Version  string
	Warnings []string
}

// LoadFile reads and parses a spec file. File references resolve relative to
// the spec's own directory.
func LoadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving spec path: %w", err)
	}

	return Load(data, &datamodel.DocumentConfiguration{
		BasePath:            filepath.Dir(absPath),
		AllowFileReferences: true,
	})
}

// Load parses raw document bytes. Only OpenAPI 3.x is accepted.
func Load(data []byte, config *datamodel.DocumentConfiguration) (*Result, error) {
	var doc libopenapi.Document
	var err error

	if config != nil {
		doc, err = libopenapi.NewDocumentWithConfiguration(data, config)
	} else {
		doc, err = libopenapi.NewDocument(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing OpenAPI document: %w", err)
	}

	version := doc.GetVersion()
	if !strings.HasPrefix(version, "3.") {
		return nil, fmt.Errorf("unsupported OpenAPI version %s: sync extensions require 3.x", version)
	}

	docModel, err := doc.BuildV3Model()
	if err != nil {
		return nil, fmt.Errorf("building OpenAPI model: %w", err)
	}

	result := &Result{
		Document: docModel,
		Version:  version,
	}
	if strings.HasPrefix(version, "3.0") {
		result.Warnings = append(result.Warnings,
			"OpenAPI 3.0.x document: sync extensions are read, but 3.1 schema features are unavailable")
	}

	return result, nil
}
