package tools

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

/*
GenerateSchema reflects the argument struct T into an inline JSON schema.
Fields without omitempty become required. descriptions fills in per-property
text that is only known at runtime.
*/
func GenerateSchema[T any](descriptions map[string]string) json.RawMessage {
	reflector := jsonschema.Reflector{
		Anonymous:                 true,
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}

	var v T
	schema := reflector.Reflect(v)
	schema.Version = ""

	for name, description := range descriptions {
		if prop, ok := schema.Properties.Get(name); ok {
			prop.Description = description
		}
	}

	buf, err := json.Marshal(schema)
	if err != nil {
		// Argument structs are plain string fields; failing here is a programming error.
		panic(fmt.Sprintf("tools: marshal schema for %T: %v", v, err))
	}

	return buf
}
