package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
)

type jsonFormatter struct{}

// NewJSONFormatter formats output into indented json
func NewJSONFormatter() jsonFormatter {
	return jsonFormatter{}
}

// Format returns the encoded json output. Names like "Bitter & Twisted" are
// kept readable rather than HTML escaped.
func (f jsonFormatter) Format(data func() interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data()); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
