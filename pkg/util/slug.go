package util

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile("[^a-z0-9]+")
	slugFormat       = regexp.MustCompile("^[a-z0-9]+(?:-[a-z0-9]+)*$")

	// Minimal transliteration table for the accented characters that show
	// up in supplier and product names.
	slugTransliterations = strings.NewReplacer(
		"á", "a", "à", "a", "ä", "a", "â", "a",
		"é", "e", "è", "e", "ë", "e", "ê", "e",
		"í", "i", "ì", "i", "ï", "i", "î", "i",
		"ó", "o", "ò", "o", "ö", "o", "ô", "o",
		"ú", "u", "ù", "u", "ü", "u", "û", "u",
		"ñ", "n", "ç", "c",
	)
)

// Slugify creates a URL-friendly slug from a display name.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = slugTransliterations.Replace(slug)
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 100 {
		slug = strings.Trim(slug[:100], "-")
	}
	return slug
}

// IsValidSlug validates slug format
func IsValidSlug(slug string) bool {
	if slug == "" || len(slug) > 100 {
		return false
	}
	return slugFormat.MatchString(slug)
}
