package email

// SendAuthorWelcomeEmail greets a newly registered author.
func (c *Client) SendAuthorWelcomeEmail(to, authorName string) error {
	data := map[string]string{
		"AuthorName": authorName,
	}

	return c.SendEmail(
		to,
		"Welcome to the Blog!",
		TemplateAuthorWelcome,
		data,
	)
}
