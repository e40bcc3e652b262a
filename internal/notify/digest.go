package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

var digestTemplate = template.Must(template.New("digest").Parse(digestHTML))

// RenderDigest produces the digest email with a plain text fallback.
func RenderDigest(items []DigestItem) (*RenderedMessage, error) {
	subject := fmt.Sprintf("ROP shortlist: %d posting(s) expiring soon", len(items))

	var htmlBuf bytes.Buffer
	if err := digestTemplate.Execute(&htmlBuf, items); err != nil {
		return nil, fmt.Errorf("notify: render digest: %w", err)
	}

	return &RenderedMessage{
		Subject: subject,
		Text:    renderPlainText(items),
		HTML:    htmlBuf.String(),
	}, nil
}

func renderPlainText(items []DigestItem) string {
	var sb strings.Builder
	sb.WriteString("Shortlisted postings expiring soon\n")
	sb.WriteString(strings.Repeat("=", 40) + "\n\n")

	for _, it := range items {
		sb.WriteString(fmt.Sprintf("%s - %s\n", it.Course.ID, it.Course.Title))
		sb.WriteString(fmt.Sprintf("  Expires: %s (%s)\n", it.Course.Expires, daysLabel(it.DaysRemaining)))
		if it.Course.Department != "" {
			sb.WriteString(fmt.Sprintf("  Department: %s\n", it.Course.Department))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func daysLabel(days int) string {
	switch days {
	case 0:
		return "expires today"
	case 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}

const digestHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <title>Shortlisted postings expiring soon</title>
</head>
<body style="font-family: sans-serif; color: #111; margin: 0; padding: 24px;">
  <h2>Shortlisted postings expiring soon</h2>
  <table cellpadding="8" cellspacing="0" border="0" style="border-collapse: collapse;">
    <tr style="text-align: left; border-bottom: 2px solid #ccc;">
      <th>Posting</th><th>Department</th><th>Expires</th><th>Time left</th>
    </tr>
    {{range .}}
    <tr style="border-bottom: 1px solid #eee;">
      <td><strong>{{.Course.ID}}</strong> - {{.Course.Title}}</td>
      <td>{{.Course.Department}}</td>
      <td>{{.Course.Expires}}</td>
      <td>{{if eq .DaysRemaining 0}}today{{else}}{{.DaysRemaining}} day(s){{end}}</td>
    </tr>
    {{end}}
  </table>
</body>
</html>
`
