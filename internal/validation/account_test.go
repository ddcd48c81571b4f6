package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountValidators(t *testing.T) {
	t.Parallel()
	// 64 local + @ + 185 domain + ".com" is exactly 254 characters.
	longestEmail := strings.Repeat("a", 64) + "@" + strings.Repeat("b", 185) + ".com"

	cases := []struct {
		field string
		check func(string) error
		ok    []string
		bad   []string
	}{
		{
			field: "password",
			check: ValidatePassword,
			ok: []string{
				"Namaste-Kathmandu1",
				"Abcdefghij1!",
				"A" + strings.Repeat("b", 125) + "1!",
				"ÅngstromPass12!",
			},
			bad: []string{
				"Short1!",
				"A" + strings.Repeat("b", 126) + "1!",
				"lowercase-only-12",
				"UPPERCASE-ONLY-12",
				"NoDigitsHere!!",
				"NoSpecials1234",
			},
		},
		{
			field: "username",
			check: ValidateUsername,
			ok:    []string{"nhaf_root", "sita-sharma", "ram123"},
			bad:   []string{"rk", "sita@nhaf", "-staff", "staff_", strings.Repeat("x", 31)},
		},
		{
			field: "email",
			check: ValidateEmail,
			ok:    []string{"info@nhaf.org.np", "root@nhaf.local", longestEmail},
			bad:   []string{"not-an-email", "user@", "user@@nhaf.org", "user @nhaf.org", "user@nhaf.org.", longestEmail + "m"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			for _, v := range tc.ok {
				assert.NoError(t, tc.check(v), "%q should pass", v)
			}
			for _, v := range tc.bad {
				assert.Error(t, tc.check(v), "%q should fail", v)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	t.Parallel()
	for _, ok := range []string{"9841000000", "+977 9841000000", "01-4412345"} {
		assert.NoError(t, ValidatePhone(ok), ok)
	}
	for _, bad := range []string{"", "12", "phone", "+977 98410000000000000"} {
		assert.Error(t, ValidatePhone(bad), bad)
	}
}

func TestRequired(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Required(Field{"name", "Asha"}))
	err := Required(Field{"name", " "}, Field{"email", "a@b.co"}, Field{"location", ""})
	assert.EqualError(t, err, "required: name, location")
}

func TestValidateOptionalEmail(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateOptionalEmail(""))
	assert.Error(t, ValidateOptionalEmail("nope"))
}
