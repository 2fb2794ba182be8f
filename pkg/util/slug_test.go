package util

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
		{
			name:  "Simple name",
			input: "Pasta Barilla",
			want:  "pasta-barilla",
		},
		{
			name:  "Special characters collapse to single hyphen",
			input: "Caffè -- Espresso (250g)",
			want:  "caffe-espresso-250g",
		},
		{
			name:  "Accented characters transliterated",
			input: "Jamón Ibérico Añejo",
			want:  "jamon-iberico-anejo",
		},
		{
			name:  "Leading and trailing junk trimmed",
			input: "  ¡Oferta!  ",
			want:  "oferta",
		},
		{
			name:  "Already a slug",
			input: "parmigiano-reggiano-24",
			want:  "parmigiano-reggiano-24",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("pasta-barilla"))
	assert.True(t, IsValidSlug("a1"))
	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug("Pasta"))
	assert.False(t, IsValidSlug("double--hyphen"))
	assert.False(t, IsValidSlug("-leading"))
}

func TestSlugifyOutputIsValid(t *testing.T) {
	for _, input := range []string{"Pasta Barilla", "Jamón 100%", "A B C", "x"} {
		slug := Slugify(input)
		assert.True(t, IsValidSlug(slug), "Slugify(%q) = %q", input, slug)
	}
}
