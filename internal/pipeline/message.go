package pipeline

import (
	"fmt"
	"strings"
	"text/template"
	"time"
)

const (
	DefaultSubjectTemplate = `Orders with {{.Status}} status - {{.Count}} matching rows`
	DefaultBodyTemplate    = `Attached are the {{.Count}} of {{.Total}} rows from {{.Input}} with {{.Column}} "{{.Status}}".` +
		`{{if eq .Count 0}} No rows matched, the attachment contains the header only.{{end}}`
)

// MessageData is what subject and body templates are executed against.
type MessageData struct {
	Count  int
	Total  int
	Status string
	Column string
	Input  string
	Output string
	Date   string // YYYY-MM-DD of the run; unused by the default templates
}

type Composer struct {
	subject *template.Template
	body    *template.Template
}

func NewComposer(subject, body string) (*Composer, error) {
	if subject == "" {
		subject = DefaultSubjectTemplate
	}
	if body == "" {
		body = DefaultBodyTemplate
	}

	subjectTpl, err := template.New("subject").Option("missingkey=error").Parse(subject)
	if err != nil {
		return nil, fmt.Errorf("failed to parse subject template: %w", err)
	}

	bodyTpl, err := template.New("body").Option("missingkey=error").Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse body template: %w", err)
	}

	c := &Composer{subject: subjectTpl, body: bodyTpl}

	// unknown fields only surface on execution
	if _, _, err := c.Compose(MessageData{Date: time.Now().Format(time.DateOnly)}); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Composer) Compose(data MessageData) (subject, body string, err error) {
	var sb strings.Builder
	if err := c.subject.Execute(&sb, data); err != nil {
		return "", "", fmt.Errorf("failed to execute subject template: %w", err)
	}
	subject = sb.String()

	sb.Reset()
	if err := c.body.Execute(&sb, data); err != nil {
		return "", "", fmt.Errorf("failed to execute body template: %w", err)
	}

	return subject, sb.String(), nil
}
