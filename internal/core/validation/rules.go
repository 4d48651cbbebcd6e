// Package validation contains field-level rules as pure functions.
// Each rule inspects one value and reports at most one Violation; Run collects
// every violation so callers can show the complete list at once.
package validation

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/example/portfolio/internal/i18n"
)

// Violation is a failed rule, expressed as a message key and its arguments.
type Violation struct {
	Key  i18n.Key
	Args []any
}

// Rule evaluates a single constraint.
type Rule func() *Violation

// Run evaluates rules in order and returns every violation.
func Run(rules ...Rule) []Violation {
	var out []Violation
	for _, r := range rules {
		if v := r(); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

func violation(key i18n.Key, args ...any) *Violation {
	return &Violation{Key: key, Args: args}
}

// Required fails on blank strings.
func Required(field i18n.Key, value string) Rule {
	return func() *Violation {
		if strings.TrimSpace(value) == "" {
			return violation(i18n.Required, field)
		}
		return nil
	}
}

// RequiredID fails when a reference has not been supplied.
func RequiredID(field i18n.Key, id int64) Rule {
	return func() *Violation {
		if id <= 0 {
			return violation(i18n.Required, field)
		}
		return nil
	}
}

// Length fails when a non-blank value is outside [min, max] characters.
// Blank values are left to Required so a missing field reports once.
func Length(field i18n.Key, value string, min, max int) Rule {
	return func() *Violation {
		if strings.TrimSpace(value) == "" {
			return nil
		}
		n := utf8.RuneCountInString(value)
		if n < min || n > max {
			return violation(i18n.Length, field, min, max)
		}
		return nil
	}
}

// MaxLength fails when value has more than max characters.
func MaxLength(field i18n.Key, value string, max int) Rule {
	return func() *Violation {
		if utf8.RuneCountInString(value) > max {
			return violation(i18n.MaxLength, field, max)
		}
		return nil
	}
}

// ExactLength fails when a non-blank value does not have exactly n characters.
func ExactLength(field i18n.Key, value string, n int) Rule {
	return func() *Violation {
		if value != "" && utf8.RuneCountInString(value) != n {
			return violation(i18n.ExactLength, field, n)
		}
		return nil
	}
}

// Email fails when a non-blank value is not a bare address.
func Email(field i18n.Key, value string) Rule {
	return func() *Violation {
		if value == "" {
			return nil
		}
		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Address != value {
			return violation(i18n.Email, field)
		}
		return nil
	}
}

// URL fails when a non-blank value is not an absolute http(s) URL.
func URL(field i18n.Key, value string) Rule {
	return func() *Violation {
		if value == "" {
			return nil
		}
		u, err := url.ParseRequestURI(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return violation(i18n.URL, field)
		}
		return nil
	}
}

// Positive fails when n is zero or negative.
func Positive(field i18n.Key, n int) Rule {
	return func() *Violation {
		if n <= 0 {
			return violation(i18n.Positive, field)
		}
		return nil
	}
}

// Matches fails when a non-blank value does not match re.
func Matches(field i18n.Key, value string, re *regexp.Regexp) Rule {
	return func() *Violation {
		if value != "" && !re.MatchString(value) {
			return violation(i18n.Format, field)
		}
		return nil
	}
}

// OneOf fails when value is not in allowed.
func OneOf[T ~string](field i18n.Key, value T, allowed []T) Rule {
	return func() *Violation {
		names := make([]string, len(allowed))
		for i, a := range allowed {
			if a == value {
				return nil
			}
			names[i] = string(a)
		}
		return violation(i18n.OneOf, field, strings.Join(names, ", "))
	}
}

// When applies r only if cond holds.
func When(cond bool, r Rule) Rule {
	return func() *Violation {
		if !cond {
			return nil
		}
		return r()
	}
}
