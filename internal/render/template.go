package render

import "html/template"

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"joinTerms": joinTerms,
}).Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
  body { font-family: system-ui, sans-serif; margin: 0; padding: 1.5rem; }
  body.light { background: #fafafa; color: #1a1a1a; }
  body.dark { background: #1e1e24; color: #e8e8e8; }
  .summary { margin-bottom: 1rem; font-size: 0.95rem; opacity: 0.8; }
  .facets { margin-bottom: 1.5rem; font-size: 0.85rem; opacity: 0.7; }
  .course-card { border: 1px solid #8884; border-radius: 6px; margin-bottom: 1rem; padding: 1rem; }
  body.dark .course-card { background: #26262e; }
  body.light .course-card { background: #fff; }
  .course-title { font-weight: 600; font-size: 1.1rem; }
  .course-meta { font-size: 0.9rem; opacity: 0.8; margin: 0.25rem 0 0.75rem; }
  .badge { display: inline-block; border-radius: 4px; padding: 0.1rem 0.5rem; font-size: 0.75rem; margin-left: 0.5rem; }
  .badge.expired { background: #c0392b; color: #fff; }
  .badge.soon { background: #e67e22; color: #fff; }
  .badge.starred { background: #2980b9; color: #fff; }
  .course-details p { margin: 0.4rem 0; }
  .course-details ul, .course-details ol { margin: 0.3rem 0 0.3rem 1.2rem; }
</style>
</head>
<body class="{{.Theme}}">
<h1>{{.Title}}</h1>
<div class="summary">Showing {{.Shown}} of {{.Total}} postings &middot; generated {{.GeneratedAt}}</div>
<div class="facets">
  Departments: {{range $i, $d := .Facets.Departments}}{{if $i}}, {{end}}{{$d}}{{end}}<br>
  Terms: {{range $i, $t := .Facets.Terms}}{{if $i}}, {{end}}{{$t}}{{end}}<br>
  Delivery: {{range $i, $m := .Facets.DeliveryMethods}}{{if $i}}, {{end}}{{$m}}{{end}}
</div>
{{range .Cards}}
<div class="course-card" id="course-{{.Course.ID}}">
  <div class="course-title">{{.Course.ID}} - {{.Course.Title}}
    {{- if .Shortlisted}}<span class="badge starred">Shortlisted</span>{{end}}
    {{- if .Expired}}<span class="badge expired">Expired</span>{{end}}
    {{- if .ExpiringSoon}}<span class="badge soon">Expiring soon</span>{{end}}
  </div>
  <div class="course-meta">
    Posted: {{.Course.Posted}} | Expires: {{.Course.Expires}}<br>
    Terms: {{joinTerms .Course.Terms}} | Delivery: {{.Course.DeliveryMethod}}
  </div>
  <div class="course-details">
    {{if .Course.Department}}<p><strong>Department:</strong> {{.Course.Department}}</p>{{end}}
    {{if .Course.DPTCode}}<p><strong>DPT Code:</strong> {{.Course.DPTCode}}</p>{{end}}
    {{if .Course.OpeningsPerTerm}}<p><strong>Openings per Term:</strong> {{.Course.OpeningsPerTerm}}</p>{{end}}
    {{if .Course.FacultySupervisors}}<p><strong>Faculty Supervisor{{if gt (len .Course.FacultySupervisors) 1}}s{{end}}:</strong>
      {{range $i, $s := .Course.FacultySupervisors}}{{if $i}}, {{end}}{{if $s.URL}}<a href="{{$s.URL}}" target="_blank" rel="noopener">{{$s.Name}}</a>{{else}}{{$s.Name}}{{end}}{{end}}</p>{{end}}
    {{if .Description}}<p><strong>Description:</strong><br>{{.Description}}</p>{{end}}
    {{if .StudentRoles}}<p><strong>Student Roles:</strong><br>{{.StudentRoles}}</p>{{end}}
    {{if .AcademicOutcomes}}<p><strong>Academic Outcomes:</strong><br>{{.AcademicOutcomes}}</p>{{end}}
    {{if .TrainingMentorship}}<p><strong>Training &amp; Mentorship:</strong><br>{{.TrainingMentorship}}</p>{{end}}
    {{if .SelectionCriteria}}<p><strong>Selection Criteria:</strong><br>{{.SelectionCriteria}}</p>{{end}}
    {{if .Course.RequiredDocuments}}
    <p><strong>Required Documents:</strong></p>
    <ul>{{range .Course.RequiredDocuments}}<li>{{.}}</li>{{end}}</ul>
    {{end}}
  </div>
</div>
{{end}}
</body>
</html>
`
