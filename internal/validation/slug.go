package validation

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Slugify lowercases s, folds accents to ASCII and joins the remaining
// letters and digits with single hyphens. It may return "" for input with
// no Latin letters or digits.
func Slugify(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ValidateSlug accepts lowercase words of letters and digits joined by hyphens.
func ValidateSlug(slug string) error {
	if !slugRegex.MatchString(slug) {
		return errors.New("slug may only contain lowercase letters, digits and hyphens")
	}
	return nil
}

// OneOf rejects value unless it is in allowed.
func OneOf(name, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%s must be one of %s", name, strings.Join(allowed, ", "))
}

// ValidateLink accepts a site path such as /about/ or an absolute http(s) URL.
// Blank is allowed.
func ValidateLink(link string) error {
	if link == "" || (strings.HasPrefix(link, "/") && !strings.HasPrefix(link, "//")) || strings.HasPrefix(link, "#") {
		return nil
	}
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid link %q", link)
	}
	return nil
}
