package email

// PreviewData holds sample values for every template, keyed by template
// name, for rendering previews.
var PreviewData = map[Template]map[string]string{
	TemplateAuthorWelcome: {
		"AuthorName": "Alice",
	},
}
