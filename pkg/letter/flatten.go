package letter

import (
	"fmt"
	"strings"

	"github.com/letteragent/letteragent/pkg/template"
)

// FlattenFields renders the entered custom-field values ahead of the
// free-text body. Each field with a non-empty value contributes one
// "label: value" line; the lines join with newlines and attach to the
// body with a blank line. With no contributing fields the body passes
// through unchanged.
func FlattenFields(fields []template.FieldDescriptor, values map[string]string, body string) string {
	var lines []string
	for _, f := range fields {
		v := values[f.ID]
		if v == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", f.Label, v))
	}
	if len(lines) == 0 {
		return body
	}
	return strings.Join(lines, "\n") + "\n\n" + body
}
