package palette

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
	validator "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var embeddedSchemaData []byte

// GenerateSchema generates JSON schema for the palette Config struct.
func GenerateSchema() ([]byte, error) {
	schema := jsonschema.Reflect(&Config{})
	schema.Title = "Toggler Palette Configuration"
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// Verify validates palette file data of the given format (yaml, json or toml) against the embedded JSON schema.
func Verify(format string, data []byte) error {
	if len(embeddedSchemaData) == 0 {
		return errors.New("embedded palette schema is empty")
	}

	// compile the embedded schema
	compiler := validator.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(embeddedSchemaData)); err != nil {
		return fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	cfg, err := decodeGeneric(format, data)
	if err != nil {
		return fmt.Errorf("failed to parse palette file: %w", err)
	}

	if err := schema.Validate(cfg); err != nil {
		return fmt.Errorf("palette validation failed: %w", err)
	}
	return nil
}
