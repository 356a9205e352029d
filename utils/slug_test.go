package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple title", input: "Hello World", want: "hello-world"},
		{name: "punctuation stripped", input: "Hello, World!", want: "hello-world"},
		{name: "underscores collapse to hyphens", input: "hello_world_again", want: "hello-world-again"},
		{name: "whitespace runs collapse", input: "  spaced   out  title ", want: "spaced-out-title"},
		{name: "edge hyphens trimmed", input: "--leading and trailing--", want: "leading-and-trailing"},
		{name: "mixed separators", input: "one _ two - three", want: "one-two-three"},
		{name: "already a slug", input: "already-a-slug", want: "already-a-slug"},
		{name: "empty input", input: "", want: ""},
		{name: "only punctuation", input: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestGenerateSlug(t *testing.T) {
	t.Run("derives from title when no override", func(t *testing.T) {
		assert.Equal(t, "my-first-post", GenerateSlug("My First Post", ""))
	})

	t.Run("override wins verbatim", func(t *testing.T) {
		assert.Equal(t, "Custom Slug!", GenerateSlug("My First Post", "Custom Slug!"))
	})

	t.Run("whitespace-only override is ignored", func(t *testing.T) {
		assert.Equal(t, "my-first-post", GenerateSlug("My First Post", "   "))
	})
}
