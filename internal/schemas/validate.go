// Package schemas provides JSON Schema validation for the three input
// documents. Schemas are embedded in the binary; validation produces
// warnings, never fatal errors, because the build must degrade
// gracefully on imperfect data.
package schemas

import (
	"embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFS embed.FS

// Schema names for the three input documents.
const (
	Tracker = "tracker"
	Tasks   = "tasks"
	Network = "network"
)

// Validate checks a raw JSON document against the named embedded
// schema. It returns one human-readable warning per violation. A
// failure to run validation at all (unreadable schema, document that
// is not JSON) is reported the same way: as warnings.
func Validate(name string, document []byte) []string {
	schemaContent, err := schemaFS.ReadFile(name + ".schema.json")
	if err != nil {
		return []string{fmt.Sprintf("schema %q is not embedded: %v", name, err)}
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaContent)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return []string{fmt.Sprintf("%s: schema validation could not run: %v", name, err)}
	}
	if result.Valid() {
		return nil
	}

	warnings := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		warnings = append(warnings, fmt.Sprintf("%s: %s: %s", name, field, desc.Description()))
	}
	return warnings
}
