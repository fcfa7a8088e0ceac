package palette

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// supported palette file formats, detected by file extension
const (
	formatYAML = "yaml"
	formatJSON = "json"
	formatTOML = "toml"
)

// formatOf returns the palette file format for the path. Unknown extensions are treated as yaml.
func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON
	case ".toml":
		return formatTOML
	default:
		return formatYAML
	}
}

// decode unmarshals palette data of the given format into v.
func decode(format string, data []byte, v any) error {
	var err error
	switch format {
	case formatJSON:
		err = json.Unmarshal(data, v)
	case formatTOML:
		err = toml.Unmarshal(data, v)
	default:
		err = yaml.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("invalid %s: %w", format, err)
	}
	return nil
}

// decodeGeneric unmarshals palette data into plain json types for schema validation.
// toml produces typed slices and maps, so everything goes through a json round trip.
func decodeGeneric(format string, data []byte) (any, error) {
	var raw any
	if err := decode(format, data, &raw); err != nil {
		return nil, err
	}
	if format == formatJSON {
		return raw, nil
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", format, err)
	}
	var res any
	if err := json.Unmarshal(buf, &res); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", format, err)
	}
	return res, nil
}
