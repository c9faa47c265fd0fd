// Package prompt renders parameterized prompt text. Templates support
// optional sections, repeated-list expansion, and nested field access;
// the text itself is treated as opaque content owned by the flows.
package prompt

import (
	"fmt"
	"strings"
	"text/template"
)

// Template is a compiled prompt template.
type Template struct {
	tmpl *template.Template
}

// Parse compiles text into a Template.
func Parse(name, text string) (*Template, error) {
	t, err := template.New(name).Option("missingkey=zero").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template %q: %w", name, err)
	}
	return &Template{tmpl: t}, nil
}

// MustParse is Parse for package-level template variables.
func MustParse(name, text string) *Template {
	t, err := Parse(name, text)
	if err != nil {
		panic(err)
	}
	return t
}

// Render executes the template against data and returns the prompt text.
func (t *Template) Render(data interface{}) (string, error) {
	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render prompt %q: %w", t.tmpl.Name(), err)
	}
	return sb.String(), nil
}
