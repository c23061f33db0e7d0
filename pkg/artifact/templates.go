package artifact

// DefaultSolutionTemplate renders a Solution. Dates are rendered in UTC so
// that the output doesn't depend on the machine running the sync.
const DefaultSolutionTemplate = `{{ .CommentSyntax }} {{ printf "%04d" .QuestionID }} - {{ .Title }}
{{ .CommentSyntax }} Date: {{ dateInZone "2006-01-02" .Timestamp "UTC" }}
{{ .CommentSyntax }} Runtime: {{ .Runtime }}, Memory: {{ .Memory }}
{{ .CommentSyntax }} Submission Id: {{ .ID }}


{{ .Code }}
`

// DefaultReadmeTemplate renders a leetcode.Problem.
const DefaultReadmeTemplate = `# {{ printf "%04d" .QuestionID }} - {{ .Title }}

## Metadata

 - Difficulty: ` + "`{{ .Difficulty }}`" + `
 - Link: https://www.leetcode.com/problems/{{ .TitleSlug }}
{{- if .TopicTags }}
 - Topics: {{ range $i, $tag := .TopicTags }}{{ if $i }}, {{ end }}{{ $tag.Name }}{{ end }}
{{- end }}

## Content

{{ .Content }}

## Hint

{{ range .Hints }}- {{ . }}
{{ end }}
`
