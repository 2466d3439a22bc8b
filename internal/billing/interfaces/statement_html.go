package interfaces

import (
	"bytes"
	"html/template"

	"theater-billing/internal/billing/currency"
	billing "theater-billing/internal/billing/domain"
)

const statementHTMLTemplate = `<h1>Statement for {{.Customer}}</h1>
<table>
<tr><th>play</th><th>seats</th><th>cost</th></tr>
{{- range .Performances}}
<tr><td>{{.Play.Name}}</td><td>{{.Audience}}</td><td>{{usd .Amount}}</td></tr>
{{- end}}
</table>
<p>Amount owed is <em>{{usd .TotalAmount}}</em></p>
<p>You earned <em>{{.TotalVolumeCredits}}</em> credits</p>
`

var statementHTML = template.Must(template.New("statement").
	Funcs(template.FuncMap{"usd": currency.FormatUSD}).
	Parse(statementHTMLTemplate))

// RenderHTML renders the statement as an HTML fragment.
func RenderHTML(data billing.StatementData) (string, error) {
	var buf bytes.Buffer
	if err := statementHTML.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
