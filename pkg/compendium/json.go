package compendium

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// JSONEncoder renders the compendium as a single JSON object holding a
// "repository" array of {path, content} pairs in input order. The shape is
// a wire contract for downstream re-ingestion: 2-space indentation, no HTML
// escaping.
type JSONEncoder struct{}

type jsonDocument struct {
	Repository []FileContent `json:"repository"`
}

// Encode implements Encoder.
func (JSONEncoder) Encode(contents []FileContent) (string, error) {
	doc := jsonDocument{Repository: contents}
	if doc.Repository == nil {
		doc.Repository = []FileContent{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("failed to encode JSON document: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
