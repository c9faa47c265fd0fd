package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSubstitutesFields(t *testing.T) {
	tmpl := MustParse("greeting", "Hello, {{.Name}}!")
	out, err := tmpl.Render(struct{ Name string }{Name: "chef"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, chef!", out)
}

func TestRenderConditionalSection(t *testing.T) {
	tmpl := MustParse("conditional", "Base.{{if .Cuisine}} Cuisine: {{.Cuisine}}.{{end}}")

	out, err := tmpl.Render(struct{ Cuisine string }{Cuisine: "Italian"})
	require.NoError(t, err)
	assert.Equal(t, "Base. Cuisine: Italian.", out)

	out, err = tmpl.Render(struct{ Cuisine string }{})
	require.NoError(t, err)
	assert.Equal(t, "Base.", out)
}

func TestRenderRepeatedList(t *testing.T) {
	tmpl := MustParse("list", "{{range .Items}}- {{.}}\n{{end}}")
	out, err := tmpl.Render(struct{ Items []string }{Items: []string{"rice", "beans"}})
	require.NoError(t, err)
	assert.Equal(t, "- rice\n- beans\n", out)
}

func TestRenderNestedFields(t *testing.T) {
	type inner struct{ Name string }
	tmpl := MustParse("nested", "Recipe: {{.Recipe.Name}}")
	out, err := tmpl.Render(struct{ Recipe inner }{Recipe: inner{Name: "Dal"}})
	require.NoError(t, err)
	assert.Equal(t, "Recipe: Dal", out)
}

func TestParseRejectsBadTemplate(t *testing.T) {
	_, err := Parse("broken", "{{if}}")
	assert.Error(t, err)
}
