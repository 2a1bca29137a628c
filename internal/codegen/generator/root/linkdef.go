package root

import "text/template"

// The linkdef file drives dictionary generation for the classes in the
// header, one directive per type.
const linkDefTemplate = `{{.Header -}}
#ifdef __CINT__

#pragma link off all globals;
#pragma link off all classes;
#pragma link off all functions;

{{range .Types}}#pragma link C++ class {{$.NS}}::{{.Name}}+;
{{end}}
#endif
`

var linkDefTmpl = template.Must(template.New("root linkdef").Parse(linkDefTemplate))
