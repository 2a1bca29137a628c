package spectcl

import "text/template"

const headerTemplate = `{{.Header -}}
#ifndef {{.Guard}}
#define {{.Guard}}
#include <TreeParameter.h>
#include <string>

{{range .Types -}}
struct {{.Name}} {
{{range .Members}}   {{.CType}} {{.Name}}{{.Dim}};
{{end}}
   void Initialize(std::string basename);
};

{{end -}}
#ifndef IMPLEMENTATION_MODULE

{{range .Instances}}extern {{.CType}} {{.Name}}{{.Dim}};
{{end}}
#endif

void Initialize();
void SetupEvent();
void CommitEvent();

#endif
`

var headerTmpl = template.Must(template.New("spectcl header").Parse(headerTemplate))
