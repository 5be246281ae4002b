package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (valid: json, yaml)", format)
	}
}

// render writes v to w in the given format.
func render(w io.Writer, format string, v any) error {
	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
}
