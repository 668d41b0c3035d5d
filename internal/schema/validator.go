package schema

import (
	"bytes"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"xhdwallet/internal/domain"
)

// Validator checks decoded payloads against inline JSON-Schema documents.
type Validator struct{}

// New returns a JSON-Schema validator.
func New() *Validator { return &Validator{} }

// Validate compiles schemaJSON and checks document against it. A nil or
// empty schema accepts any document.
func (v *Validator) Validate(schemaJSON, document []byte) error {
	if len(schemaJSON) == 0 {
		return nil
	}

	raw, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("payload.schema.json", raw); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := compiler.Compile("payload.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(document))
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	return compiled.Validate(doc)
}

// Compile-time assertion that Validator implements domain.SchemaValidator.
var _ domain.SchemaValidator = (*Validator)(nil)
