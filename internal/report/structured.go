package report

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// JSON renders results as indented JSON. Decoding the output yields the
// same findings and suggestions in the same order.
func JSON(r *Results) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// YAML renders results as a YAML document.
func YAML(r *Results) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
