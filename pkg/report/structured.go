package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

type jsonRenderer struct{}

func (jsonRenderer) Render(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

type yamlRenderer struct{}

func (yamlRenderer) Render(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
