package root

import "text/template"

const headerTemplate = `{{.Header -}}
#ifndef {{.Guard}}
#define {{.Guard}}
#include <TObject.h>

namespace {{.NS}} {

{{range .Types -}}
class {{.Name}} : public TObject {
public:
   {{.Name}}();
   ~{{.Name}}();
   {{.Name}}(const {{.Name}}&);
   {{.Name}}& operator=(const {{.Name}}& rhs);
   void Reset();

{{range .Members}}   {{.CType}} {{.Name}}{{.Dim}};
{{end}}
  ClassDef({{.Name}}, 1)
};

{{end -}}
#ifndef IMPLEMENTATION_MODULE

extern struct {
{{range .Instances}}   {{.CType}} {{.Name}}{{.Dim}};
{{end -}}
} instanceStruct;

{{range .Instances}}extern {{.CType}} (&{{.Name}}){{.Dim}};
{{end}}
#endif

void Initialize();
void SetupEvent();
void CommitEvent();

}
#endif
`

var headerTmpl = template.Must(template.New("root header").Parse(headerTemplate))
