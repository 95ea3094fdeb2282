package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatterDelimiter separates YAML frontmatter from the markdown body.
const frontmatterDelimiter = "---"

// Template is a parsed email template: the subject declared in the
// frontmatter, any remaining frontmatter fields, and the markdown body.
type Template struct {
	Subject  string
	Metadata map[string]any
	Body     string
}

// ParseTemplate splits template file content into YAML frontmatter and a
// markdown body. The Subject frontmatter field is extracted into its own
// slot; every other field lands in Metadata for layouts to consume.
// Content without a leading "---" is treated as body-only.
func ParseTemplate(content []byte) (*Template, error) {
	text := string(content)
	if !strings.HasPrefix(text, frontmatterDelimiter) {
		return &Template{Metadata: map[string]any{}, Body: text}, nil
	}

	rest := strings.TrimLeft(strings.TrimPrefix(text, frontmatterDelimiter), "\r\n")
	if rest == "" {
		return nil, fmt.Errorf("%w: nothing after opening delimiter", ErrInvalidFrontmatter)
	}

	head, body, found := strings.Cut(rest, frontmatterDelimiter)
	if !found {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}
	// Swallow the single newline (LF or CRLF) after the closing delimiter.
	body = strings.TrimPrefix(strings.TrimPrefix(body, "\r"), "\n")

	var fm struct {
		Subject string         `yaml:"Subject"`
		Extra   map[string]any `yaml:",inline"`
	}
	if strings.TrimSpace(head) != "" {
		if err := yaml.Unmarshal([]byte(head), &fm); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}
	if fm.Extra == nil {
		fm.Extra = map[string]any{}
	}

	return &Template{Subject: fm.Subject, Metadata: fm.Extra, Body: body}, nil
}
