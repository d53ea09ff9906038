// Package templates renders the TypeScript output templates. The embedded set
// ships with the binary; a custom directory can shadow individual templates by
// name for projects that need different output shapes.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

type Engine interface {
	Execute(name string, data any) (string, error)
}

// TextTemplateEngine parses all .tmpl files into one shared namespace so that
// named defines (the "args"/"method" fragments) are callable across files.
type TextTemplateEngine struct {
	templates *template.Template
	embedded  embed.FS
	customDir string
}

func NewEngine(embedded embed.FS, customDir string, funcs template.FuncMap) (*TextTemplateEngine, error) {
	e := &TextTemplateEngine{
		templates: template.New("").Funcs(funcs),
		embedded:  embedded,
		customDir: customDir,
	}

	if err := e.loadEmbedded(); err != nil {
		return nil, err
	}
	// Custom templates parse last so same-named ones win.
	if err := e.loadCustom(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *TextTemplateEngine) loadEmbedded() error {
	return fs.WalkDir(e.embedded, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}
		content, err := e.embedded.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading embedded template %s: %w", path, err)
		}
		name := strings.TrimPrefix(path, "templates/")
		if _, err := e.templates.New(name).Parse(string(content)); err != nil {
			return fmt.Errorf("parsing embedded template %s: %w", path, err)
		}
		return nil
	})
}

func (e *TextTemplateEngine) loadCustom() error {
	if e.customDir == "" {
		return nil
	}
	err := filepath.WalkDir(e.customDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading custom template %s: %w", path, err)
		}
		relPath, _ := filepath.Rel(e.customDir, path)
		if _, err := e.templates.New(relPath).Parse(string(content)); err != nil {
			return fmt.Errorf("parsing custom template %s: %w", path, err)
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading custom templates from %s: %w", e.customDir, err)
	}
	return nil
}

func (e *TextTemplateEngine) Execute(name string, data any) (string, error) {
	tmpl := e.templates.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("template not found: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}
