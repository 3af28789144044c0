package codegen

import (
	"path"

	"github.com/rs/zerolog/log"

	"github.com/compass-routing/compass-codegen/internal/codegen/writer"
)

// RenderConstraint produces the relative-file-path to content mapping for a
// new constraint model package. Constraint models have no extension variants;
// the set is always a single stub file.
func RenderConstraint(name ModelName) (map[string]string, error) {
	data := newTemplateData(name, ExtensionNone)
	snake := name.Snake()

	content, err := render(constraintTemplates, "model.go.tmpl", data)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		path.Join(snake, snake+".go"): content,
	}, nil
}

// GenerateConstraint renders the constraint template for name and writes it
// beneath dir, which must already exist.
func GenerateConstraint(dir string, name ModelName, force bool) ([]string, error) {
	files, err := RenderConstraint(name)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("name", name.Pascal()).
		Str("path", dir).
		Msg("generating constraint model package")

	return writer.WriteFiles(dir, files, force)
}
