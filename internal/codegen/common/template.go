package common

import (
	"bytes"
	"fmt"
	"text/template"
)

// Execute renders tmpl with data into memory.
func Execute(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute %s template: %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}
