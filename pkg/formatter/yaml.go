package formatter

import (
	"encoding/json"

	"gopkg.in/yaml.v2"
)

type yamlFormatter struct{}

// NewYAMLFormatter formats output into yaml using the json field names
func NewYAMLFormatter() yamlFormatter {
	return yamlFormatter{}
}

// Format returns the Marshalled yaml output
func (f yamlFormatter) Format(data func() interface{}) (string, error) {
	// round trip through json so custom json marshalers and tags apply
	raw, err := json.Marshal(data())
	if err != nil {
		return "", err
	}
	var generic interface{}
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return "", err
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
