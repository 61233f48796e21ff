package formatter

// GeneralIssueFormatter renders a value that fails its rule with the source
// line and an underline below the value.
type GeneralIssueFormatter struct{}

func (f *GeneralIssueFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn -}}
{{snippet .SnippetLines .StartLine .EndLine .MaxLineNumWidth .CommonIndent .Padding -}}
{{underlineAndMessage .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines .CommonIndent -}}
{{note .Note -}}
`
}

// RequiredValueFormatter renders a missing required value. There is no
// source text to underline, so it prints only the message.
type RequiredValueFormatter struct{}

func (f *RequiredValueFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn -}}
{{message .Message .Padding -}}
{{note .Note -}}
`
}
