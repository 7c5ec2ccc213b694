// Package load reads OpenAPI documents into the definitions map the
// compiler consumes. JSON and YAML inputs are supported.
package load

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrNoDefinitions indicates the document carries no definitions map. This
// is a fatal input error: there is nothing to compile.
var ErrNoDefinitions = errors.New("typegen: document has no definitions map")

// Document is the parsed input: a swagger/OpenAPI export whose definitions
// map dotted names to raw schema nodes. Definitions are immutable once read.
type Document struct {
	Definitions map[string]map[string]any `json:"definitions" yaml:"definitions"`
}

// FromFile reads a document, dispatching on the file extension: .yaml and
// .yml parse as YAML, everything else as JSON.
func FromFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("typegen: read document: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(data)
	default:
		return FromJSON(data)
	}
}

// FromJSON parses a JSON document.
func FromJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("typegen: parse document: %w", err)
	}
	return validate(&doc)
}

// FromYAML parses a YAML document.
func FromYAML(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("typegen: parse document: %w", err)
	}
	return validate(&doc)
}

func validate(doc *Document) (*Document, error) {
	if len(doc.Definitions) == 0 {
		return nil, ErrNoDefinitions
	}
	return doc, nil
}
