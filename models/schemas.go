package models

// JSON Schemas for the current wire shape of each model. fixturectl checks
// latest-version fixtures against these before writing them out.

const ProfileSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["firstName", "lastName", "version"],
  "properties": {
    "firstName": {"type": "string"},
    "middleName": {"type": ["string", "null"]},
    "lastName": {"type": "string"},
    "version": {"type": "integer", "minimum": 0}
  },
  "additionalProperties": false
}`

const DeviceSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["id", "label", "poll_ms", "version"],
  "properties": {
    "id": {"type": "string", "format": "uuid"},
    "label": {"type": "string"},
    "poll_ms": {"type": "integer", "minimum": 0},
    "version": {"type": "integer", "minimum": 0}
  },
  "additionalProperties": false
}`
