package gen

import "text/template"

var fileTemplate = template.Must(template.New("units").Parse(`// Code generated by kunitgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import "github.com/birdayz/kunits"
{{range .Edges}}
var {{.Var}} = {{.Expr}}
{{end}}
{{- range .Units}}
// {{.Name}} is a {{$.Dimension}} measured in {{.Symbol}}.{{if .Chain}} It converts to {{$.Hub}} through {{.Chain}}.{{end}}
type {{.Name}} float64
{{if .Alias}}
// {{.Alias}} is an alias of {{.Name}}.
type {{.Alias}} = {{.Name}}
{{end}}
func (u {{.Name}}) Value() float64 {
	return float64(u)
}

func ({{.Name}}) Symbol() string {
	return {{printf "%q" .Symbol}}
}
{{if .Plural}}
func ({{.Name}}) Plural() string {
	return {{printf "%q" .Plural}}
}
{{end}}
func ({{.Name}}) New(v float64) {{.Name}} {
	return {{.Name}}(v)
}

func ({{.Name}}) Dimension() Dimension {
	return Dimension{}
}

func (u {{.Name}}) Base() float64 {
	return {{.Edge}}.Forward(float64(u))
}

func ({{.Name}}) FromBase(v float64) {{.Name}} {
	return {{.Name}}({{.Edge}}.Backward(v))
}

func (u {{.Name}}) String() string {
	return kunits.Format(u)
}

// Add converts o to {{.Name}} and adds it.
func (u {{.Name}}) Add(o {{$.Measure}}) {{.Name}} {
	return kunits.Sum(u, o)
}

// Sub converts o to {{.Name}} and subtracts it.
func (u {{.Name}}) Sub(o {{$.Measure}}) {{.Name}} {
	return kunits.Difference(u, o)
}

func (u {{.Name}}) Ratio(o {{$.Measure}}) float64 {
	return kunits.Ratio(u, o)
}

func (u {{.Name}}) Compare(o {{$.Measure}}) int {
	return kunits.Compare(u, o)
}

func (u {{.Name}}) Equal(o {{$.Measure}}) bool {
	return kunits.Equal(u, o)
}

func (u {{.Name}}) Less(o {{$.Measure}}) bool {
	return kunits.Less(u, o)
}

func (u {{.Name}}) Times(k float64) {{.Name}} {
	return {{.Name}}(float64(u) * k)
}

func (u {{.Name}}) Over(k float64) {{.Name}} {
	return {{.Name}}(float64(u) / k)
}

func (u *{{.Name}}) AddAssign(o {{$.Measure}}) {
	*u = u.Add(o)
}

func (u *{{.Name}}) SubAssign(o {{$.Measure}}) {
	*u = u.Sub(o)
}

func (u *{{.Name}}) TimesAssign(k float64) {
	*u = u.Times(k)
}

func (u *{{.Name}}) OverAssign(k float64) {
	*u = u.Over(k)
}

var _ kunits.MeasureUnit[Dimension, {{.Name}}] = {{.Name}}(0)

var _ kunits.Ordered[{{$.Measure}}] = {{.Name}}(0)

var _ kunits.Scalable[{{.Name}}] = {{.Name}}(0)
{{end}}
// Units returns one value of every {{.Dimension}} unit, in table order.
func Units() []{{.Measure}} {
	return []{{.Measure}}{
{{- range .Units}}
		{{.Name}}(0),
{{- end}}
	}
}
`))
