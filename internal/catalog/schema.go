package catalog

// catalogSchema validates catalog documents before use, so a malformed
// catalog fails loudly at load time instead of surfacing as missing
// resources during gap analysis.
const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["resources"],
  "properties": {
    "resources": {
      "type": "object",
      "additionalProperties": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["title", "url", "difficulty"],
          "properties": {
            "title": {"type": "string", "minLength": 1},
            "url": {"type": "string", "minLength": 1},
            "difficulty": {"type": "string", "enum": ["beginner", "intermediate", "advanced"]}
          }
        }
      }
    }
  }
}`
