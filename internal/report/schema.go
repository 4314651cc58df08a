package report

// Schema is the JSON Schema (Draft 2020-12) for the searchpath lookup
// JSON output. It documents the structure returned by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/tbhb/searchpath/lookup-report.schema.json",
  "title": "Searchpath Lookup Report",
  "description": "Output schema for searchpath find --format=json",
  "type": "object",
  "required": ["version", "matches"],
  "properties": {
    "version": {
      "type": "string",
      "description": "Schema version (semver)"
    },
    "matches": {
      "type": "array",
      "items": { "$ref": "#/$defs/Match" }
    }
  },
  "$defs": {
    "Match": {
      "type": "object",
      "required": ["path", "scope", "source", "relative"],
      "properties": {
        "path": {
          "type": "string",
          "description": "Absolute path of the matched file or directory"
        },
        "scope": {
          "type": "string",
          "description": "Scope label of the search path entry"
        },
        "source": {
          "type": "string",
          "description": "Root directory the match was found under"
        },
        "relative": {
          "type": "string",
          "description": "Path relative to source, forward slashes"
        }
      }
    }
  }
}`
