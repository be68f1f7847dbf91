package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// Rendered emails stay deliberately simple: one subject line and an inline
// HTML body per template name.

var welcomeTpl = template.Must(template.New("welcome").Parse(`
<html>
<body style="font-family: sans-serif; color: #1f2937;">
  <h2>Welcome to Finvesta{{if .Name}}, {{.Name}}{{end}}!</h2>
  <p>Your account is ready. We created a starter set of categories so you can
  begin recording income, expenses, and investments right away.</p>
  <p>Add your first account and start tracking.</p>
  <p style="color:#6b7280; font-size: 12px;">This email was sent to {{.Email}}.</p>
</body>
</html>`))

var monthlySummaryTpl = template.Must(template.New("monthly_summary").Parse(`
<html>
<body style="font-family: sans-serif; color: #1f2937;">
  <h2>Your {{.Month}} summary</h2>
  <table cellpadding="6">
    <tr><td>Income</td><td align="right">{{printf "%.2f" .Income}}</td></tr>
    <tr><td>Expenses</td><td align="right">{{printf "%.2f" .Expenses}}</td></tr>
    <tr><td>Invested</td><td align="right">{{printf "%.2f" .Invested}}</td></tr>
    <tr><td><strong>Net</strong></td><td align="right"><strong>{{printf "%.2f" .Net}}</strong></td></tr>
  </table>
</body>
</html>`))

// Render produces subject and HTML body for a named template.
func Render(name string, data map[string]any) (subject string, html string, err error) {
	var tpl *template.Template
	switch name {
	case "welcome":
		tpl = welcomeTpl
		subject = "Welcome to Finvesta"
	case "monthly_summary":
		tpl = monthlySummaryTpl
		subject = "Your monthly Finvesta summary"
	default:
		return "", "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}
