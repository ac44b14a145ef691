package rules

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formkit"
)

var alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Email fails when the string is not a plausible email address. Parsing
// follows RFC 5322 with extra checks for typical web use: a single @, a
// non-empty local part, and a dotted domain.
func Email() formkit.Validator {
	return formkit.Typed(func(value string, _ *formkit.Form) *formkit.Message {
		if !validEmail(value) {
			return formkit.NewError("%{field} must be a valid email address").
				WithCode("validation.email")
		}
		return nil
	})
}

func validEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}
	localPart, domain := parts[0], parts[1]
	if localPart == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL fails when the string is not an absolute URL with a scheme and host.
func URL() formkit.Validator {
	return formkit.Typed(func(value string, _ *formkit.Form) *formkit.Message {
		if !validURL(value) {
			return formkit.NewError("%{field} must be a valid URL").
				WithCode("validation.url")
		}
		return nil
	})
}

func validURL(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Alphanumeric fails when the string contains anything besides ASCII letters
// and digits.
func Alphanumeric() formkit.Validator {
	return formkit.Typed(func(value string, _ *formkit.Form) *formkit.Message {
		if !alphanumericRegex.MatchString(value) {
			return formkit.NewError("%{field} must contain only letters and numbers").
				WithCode("validation.alphanumeric")
		}
		return nil
	})
}
