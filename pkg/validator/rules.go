package validator

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"
)

// Present validates that an optional value (a nested object, a pointer) was supplied.
func Present(field string, ok bool) Rule {
	return Rule{
		Check: func() bool { return ok },
		Error: ValidationError{
			Field:          field,
			Message:        "field is missing",
			TranslationKey: "validation.missing",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func LenString(field, value string, exact int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) == exact
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be exactly %d characters long", exact),
			TranslationKey: "validation.exact_length",
			TranslationValues: map[string]any{
				"field":  field,
				"length": exact,
			},
		},
	}
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// ValidURL validates an absolute URL with a scheme and a host.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}
			return u.Scheme != "" && u.Host != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid URL",
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxLenString validates that a string has at most max runes.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// OneOfFold validates that value case-insensitively equals one of allowed.
// An empty value passes; combine with RequiredString when it must be set.
func OneOfFold(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			return slices.ContainsFunc(allowed, func(a string) bool {
				return strings.EqualFold(a, value)
			})
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be one of the allowed values",
			TranslationKey: "validation.one_of",
			TranslationValues: map[string]any{
				"field":   field,
				"allowed": allowed,
			},
		},
	}
}
