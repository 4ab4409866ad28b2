package storage

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// snapshotSchema is deliberately permissive: entity exports arrive from
// several application versions with drifting field shapes, and the decoder
// coerces those itself. The schema only flags structural problems worth a
// warning: wrong collection types and records missing their identifying
// field.
const snapshotSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "project": {"type": "object"},
    "sprints": {
      "type": "array",
      "items": {"type": "object", "required": ["id"]}
    },
    "stories": {
      "type": "array",
      "items": {"type": "object", "required": ["id"]}
    },
    "tasks": {
      "type": "array",
      "items": {"type": "object", "required": ["id"]}
    },
    "leaves": {
      "type": "array",
      "items": {"type": "object", "required": ["user_email"]}
    }
  }
}`

// ValidateSnapshotJSON checks a raw JSON snapshot against the schema and
// returns a human-readable description per violation. An unreadable
// document yields a single entry; validation never blocks loading.
func ValidateSnapshotJSON(data []byte) []string {
	schemaLoader := gojsonschema.NewStringLoader(snapshotSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return []string{fmt.Sprintf("snapshot not validatable: %v", err)}
	}
	if result.Valid() {
		return nil
	}
	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return issues
}
