// Package schema adapts the jsonschema compiler to the domain's
// SchemaValidator port.
package schema
