package scaffold

import (
	"text/template"
)

type tplDataSt struct {
	Package    string
	Name       string
	BaseName   string
	ImportPath string
}

var leafTpl = template.Must(template.New("leaf").Parse(`package {{ .Package }}

import (
	"{{ .ImportPath }}"
)

type {{ .Name }} struct {
	{{ .BaseName }}
}

func (d {{ .Name }}) ApiRoute() string {
	return ""
}

func New{{ .Name }}(opts rester.OptionsSt) *rester.Model {
	return rester.New({{ .Name }}{}, opts)
}
`))

var baseTpl = template.Must(template.New("base").Parse(`package {{ .Package }}

// {{ .Name }} holds what every definition of the group shares.
type {{ .Name }} struct{}

func (d {{ .Name }}) BaseUrl() string {
	return ""
}
`))

var standaloneTpl = template.Must(template.New("standalone").Parse(`package {{ .Package }}

import (
	"{{ .ImportPath }}"
)

type {{ .Name }} struct{}

func (d {{ .Name }}) FinalEndpoint() string {
	return ""
}

func New{{ .Name }}(opts rester.OptionsSt) *rester.Model {
	return rester.New({{ .Name }}{}, opts)
}
`))
