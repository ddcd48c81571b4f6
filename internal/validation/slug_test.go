package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]string{
		"Free Health Camp 2025":        "free-health-camp-2025",
		"  Café & Clinic -- Dhulikhel ": "cafe-clinic-dhulikhel",
		"École   d'été":                "ecole-d-ete",
		"स्वास्थ्य शिविर":              "",
		"Blood Drive (Pokhara)!":       "blood-drive-pokhara",
	} {
		got := Slugify(in)
		assert.Equal(t, want, got, in)
		if got != "" {
			assert.NoError(t, ValidateSlug(got), in)
		}
	}
	assert.Error(t, ValidateSlug("Upper-Case"))
	assert.Error(t, ValidateSlug("double--dash"))
}

func TestOneOfAndLinks(t *testing.T) {
	t.Parallel()
	assert.NoError(t, OneOf("image_fit", "cover", []string{"cover", "contain"}))
	assert.EqualError(t, OneOf("image_fit", "fill", []string{"cover", "contain"}),
		"image_fit must be one of cover, contain")

	for _, ok := range []string{"", "/about/", "#donate", "https://nhaf.example/programs"} {
		assert.NoError(t, ValidateLink(ok), ok)
	}
	for _, bad := range []string{"//evil.example", "javascript:alert(1)", "ftp://files.example", "https://"} {
		assert.Error(t, ValidateLink(bad), bad)
	}
}
