package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of the config file.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true, DoNotReference: true}
	s := r.Reflect(&Config{})
	s.Title = "demoshell config"
	s.Description = "Per-user configuration: shell, aliases, extra builtin names, palette, key bindings and logging."
	return s
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(s *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
