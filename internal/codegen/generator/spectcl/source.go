package spectcl

import "text/template"

// Every leaf is bound to a dotted path: a structure's fields hang off the
// basename handed to its Initialize, array-of-struct elements add a padded
// index, and top-level instances start the path with their own name.
const sourceTemplate = `{{.Header -}}
#define IMPLEMENTATION_MODULE
#include "{{.HeaderBase}}"

#include <cmath>
#include <cstdio>
#include <string>

//   Instance definitions

{{range .Instances}}{{.CType}} {{.Name}}{{.Dim}};
{{end}}
// Structure initializers

{{range .Types -}}
void {{.Name}}::Initialize(std::string basename) {
   std::string name = basename;
{{- range .Members}}
{{- if .IsValue}}
   {{.Name}}.Initialize(name + ".{{.Name}}", {{.Bins}}, {{.Low}}, {{.High}}, {{.Units}});
{{- else if .IsArray}}
   {{.Name}}.Initialize(name + ".{{.Name}}", {{.Bins}}, {{.Low}}, {{.High}}, {{.Units}}, {{.Elements}}, 0);
{{- else if .IsStructure}}
   {{.Name}}.Initialize(name + ".{{.Name}}");
{{- else}}
   for (int i = 0; i < {{.Elements}}; i++) {
      char index[{{.IndexBuf}}];
      snprintf(index, sizeof(index), "{{.IndexFormat}}", i);
      {{.Name}}[i].Initialize(name + ".{{.Name}}." + index);
   }
{{- end}}
{{- end}}
}

{{end -}}
// API

void Initialize() {
{{- range .Instances}}
{{- if .IsValue}}
   {{.Name}}.Initialize({{.Literal}}, {{.Bins}}, {{.Low}}, {{.High}}, {{.Units}});
{{- else if .IsArray}}
   {{.Name}}.Initialize({{.Literal}}, {{.Bins}}, {{.Low}}, {{.High}}, {{.Units}}, {{.Elements}}, 0);
{{- else if .IsStructure}}
   {{.Name}}.Initialize({{.Literal}});
{{- else}}
   for (int i = 0; i < {{.Elements}}; i++) {
      char index[{{.IndexBuf}}];
      snprintf(index, sizeof(index), "{{.IndexFormat}}", i);
      {{.Name}}[i].Initialize(std::string({{.Literal}}) + "." + index);
   }
{{- end}}
{{- end}}
}

void SetupEvent() {}

void CommitEvent() {}
`

var sourceTmpl = template.Must(template.New("spectcl source").Parse(sourceTemplate))
