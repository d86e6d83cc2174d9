package synth

import (
	"strings"
	"text/template"

	"notify-generator/internal/common"
)

var funcs = template.FuncMap{
	"doc": docComment,
}

var xmlText = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// docComment renders summary as an XML doc comment, one "///" line per
// summary line, with markup characters escaped. An empty summary renders
// nothing.
func docComment(summary string) string {
	if strings.TrimSpace(summary) == "" {
		return ""
	}

	var sb strings.Builder

	sb.WriteString("/// <summary>\n")

	for _, line := range common.SplitLines(summary) {
		sb.WriteString("/// ")
		sb.WriteString(xmlText.Replace(line))
		sb.WriteString("\n")
	}

	sb.WriteString("/// </summary>\n")

	return sb.String()
}

func newTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(text))
}

type propertyData struct {
	Summary string
	Virtual bool
	Type    string
	Name    string
	Field   string
	Method  string
}

var propertyTemplate = newTemplate("property", `{{doc .Summary}}public {{if .Virtual}}virtual {{end}}{{.Type}} {{.Name}}
{
    get => {{.Field}};
    set
    {
        {{.Field}} = value;
        {{.Method}}(value);
    }
}
`)

type eventData struct {
	Summary string
	Name    string
	Args    string // payload type name, "" for an empty payload
}

var eventTemplate = newTemplate("event", `{{doc .Summary}}public event {{if .Args}}global::System.EventHandler<{{.Args}}>{{else}}global::System.EventHandler{{end}}? {{.Name}};
`)

type methodData struct {
	Summary string
	Sealed  bool
	Name    string
	Type    string
	Event   string
	Args    string // payload type name, "" for an empty payload
}

var methodTemplate = newTemplate("method", `{{doc .Summary}}{{if .Sealed}}private{{else}}protected virtual{{end}} void {{.Name}}({{.Type}} value)
{
    {{.Event}}?.Invoke(this, {{if .Args}}new {{.Args}}(value){{else}}global::System.EventArgs.Empty{{end}});
}
`)

type payloadData struct {
	Summary string
	Name    string
	Type    string
}

var payloadTemplate = newTemplate("payload", `{{doc .Summary}}public sealed class {{.Name}} : global::System.EventArgs
{
    internal {{.Name}}({{.Type}} value)
    {
        Value = value;
    }

    public {{.Type}} Value { get; }
}
`)
