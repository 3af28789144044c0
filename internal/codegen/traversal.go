// Package codegen renders and emits plugin package stubs for the Compass
// routing engine.
package codegen

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"text/template"

	"github.com/rs/zerolog/log"

	"github.com/compass-routing/compass-codegen/internal/codegen/writer"
)

//go:embed templates/*
var templatesFS embed.FS

var (
	traversalTemplates  = template.Must(template.ParseFS(templatesFS, "templates/traversal/*.tmpl"))
	constraintTemplates = template.Must(template.ParseFS(templatesFS, "templates/constraint/*.tmpl"))
)

// templateData is the substitution context shared by all stub templates.
type templateData struct {
	Name        string
	Snake       string
	Package     string
	TypedConfig bool
	Engine      bool
}

func newTemplateData(name ModelName, ext Extension) templateData {
	return templateData{
		Name:        name.Pascal(),
		Snake:       name.Snake(),
		Package:     name.Package(),
		TypedConfig: ext != ExtensionNone,
		Engine:      ext == ExtensionTypedConfigAndEngine,
	}
}

// RenderTraversal produces the relative-file-path to content mapping for a
// new traversal model package. It is pure and deterministic: the same name
// and extension always yield byte-identical output.
func RenderTraversal(name ModelName, ext Extension) (map[string]string, error) {
	data := newTemplateData(name, ext)
	snake := name.Snake()

	plan := map[string]string{
		path.Join(snake, snake+".go"): "model.go.tmpl",
	}
	if ext == ExtensionTypedConfig || ext == ExtensionTypedConfigAndEngine {
		plan[path.Join(snake, snake+"_config.go")] = "config.go.tmpl"
		plan[path.Join(snake, snake+"_params.go")] = "params.go.tmpl"
	}
	if ext == ExtensionTypedConfigAndEngine {
		plan[path.Join(snake, snake+"_engine.go")] = "engine.go.tmpl"
	}

	files := make(map[string]string, len(plan))
	for rel, tmpl := range plan {
		content, err := render(traversalTemplates, tmpl, data)
		if err != nil {
			return nil, err
		}
		files[rel] = content
	}
	return files, nil
}

func render(set *template.Template, name string, data templateData) (string, error) {
	var sb strings.Builder
	if err := set.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return sb.String(), nil
}

// GenerateTraversal renders the traversal template set for name and writes it
// beneath dir, which must already exist. It returns the paths of the files it
// wrote, including any written before a failure.
func GenerateTraversal(dir string, name ModelName, ext Extension, force bool) ([]string, error) {
	files, err := RenderTraversal(name, ext)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("name", name.Pascal()).
		Str("extensions", ext.String()).
		Str("path", dir).
		Int("files", len(files)).
		Msg("generating traversal model package")

	return writer.WriteFiles(dir, files, force)
}
