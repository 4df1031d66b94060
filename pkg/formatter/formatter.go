package formatter

import "fmt"

// Output formats understood by Render.
const (
	Table = "table"
	JSON  = "json"
	YAML  = "yaml"
)

// Formatter formats data
type Formatter interface {
	// Format will call the getter func and render the returned data
	Format(getter func() interface{}) (string, error)
}

// Render formats data in the named output format. The table getter is only
// called for table output and must return TableContents.
func Render(format string, data interface{}, table func() interface{}) (string, error) {
	var f Formatter
	getter := func() interface{} { return data }
	switch format {
	case Table, "":
		f = NewTableFormatter()
		getter = table
	case JSON:
		f = NewJSONFormatter()
	case YAML:
		f = NewYAMLFormatter()
	default:
		return "", fmt.Errorf("unsupported output format %q, must be one of table|json|yaml", format)
	}
	return f.Format(getter)
}
