package generator

import (
	"encoding/json"
	"io/fs"
	"strings"
	"text/template"

	"github.com/Alia5/resjs/internal/codegen/common"
	generror "github.com/Alia5/resjs/internal/codegen/error"
	"github.com/Alia5/resjs/internal/codegen/meta"
	"github.com/Alia5/resjs/internal/codegen/templates"
)

// coreView is what the core template sees.
type coreView struct {
	*meta.Metadata
	Source string
}

var funcs = template.FuncMap{
	"json":   toJSON,
	"header": common.FileHeader,
}

// toJSON renders v as a JavaScript literal.
func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// LoadTemplate reads and compiles the core client template from fsys.
func LoadTemplate(fsys fs.FS) (*template.Template, error) {
	src, err := fs.ReadFile(fsys, templates.Core)
	if err != nil {
		return nil, &generror.TemplateCompileError{Name: templates.Core, Err: err}
	}
	tmpl, err := template.New(templates.Core).
		Funcs(funcs).
		Option("missingkey=error").
		Parse(string(src))
	if err != nil {
		return nil, &generror.TemplateCompileError{Name: templates.Core, Err: err}
	}
	return tmpl, nil
}

// Render executes the compiled core template against md. source is the
// metadata URL recorded in the generated header.
func Render(tmpl *template.Template, md *meta.Metadata, source string) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, coreView{Metadata: md, Source: source}); err != nil {
		return "", &generror.TemplateCompileError{Name: tmpl.Name(), Err: err}
	}
	return b.String(), nil
}
