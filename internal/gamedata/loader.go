package gamedata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a catalog file encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatOf picks the format from a file extension. Anything that is not
// .yaml or .yml is read as JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode unmarshals content in the given format.
func Decode[T any](content []byte, format Format) (T, error) {
	var result T
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(content, &result)
	default:
		err = json.Unmarshal(content, &result)
	}
	return result, err
}

// Encode marshals v in the given format. JSON output is indented.
func Encode(v any, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(v)
	default:
		content, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(content, '\n'), nil
	}
}

// Load reads and unmarshals a file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	content, err := dataFS.ReadFile(filename)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	result, err := Decode[T](content, FormatOf(filename))
	if err != nil {
		return result, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return result, nil
}

// LoadFile reads and unmarshals a file from disk.
func LoadFile[T any](path string) (T, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to read %s: %w", path, err)
	}

	result, err := Decode[T](content, FormatOf(path))
	if err != nil {
		return result, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return result, nil
}
