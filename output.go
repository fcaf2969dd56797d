package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// writeState renders s to w in the requested format.
func writeState(w io.Writer, s *State, format string) error {
	switch format {
	case formatText:
		return Render(w, s)
	case formatJSON:
		asJson, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal state to JSON")
		}
		_, err = fmt.Fprintln(w, string(asJson))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return errors.Wrap(err, "failed to marshal state to YAML")
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}

// decodeFile reads the whole file and decodes the state in it.
func decodeFile(path string, host HostProfile, enc VersionEncoding) ([]byte, *State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read %s", path)
	}
	s, err := Decode(data, host, enc)
	if err != nil {
		return data, nil, errors.Wrapf(err, "%s", path)
	}
	return data, s, nil
}
