package validate

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrorEmailMissing               = errors.New("email_missing")
	ErrorEmailInvalidAt             = errors.New("email_invalid_at")
	ErrorEmailEmptyDomain           = errors.New("email_empty_domain")
	ErrorEmailDomainInvalid         = errors.New("email_domain_invalid")
	ErrorEmailUserPartInvalidLength = errors.New("email_user_part_invalid_length")
	ErrorEmailUserPartIllegalChar   = errors.New("email_user_part_illegal_char")
	ErrorEmailUserPartEdgeSymbols   = errors.New("email_user_part_edge_symbols")
)

var domainRegex = regexp.MustCompile(
	`^(?i:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?)(?:\.(?i:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?))*\.[a-z]{2,}$`,
)

func Email(email string) error {
	errs := []error{}

	if len(email) <= 3 {
		return ErrorEmailMissing
	}

	at := strings.IndexByte(email, '@')
	if at <= 0 || at != strings.LastIndexByte(email, '@') {
		return ErrorEmailInvalidAt
	}

	user := email[:at]
	domain := email[at+1:]
	if len(domain) == 0 {
		errs = append(errs, ErrorEmailEmptyDomain)
	} else if !domainRegex.MatchString(domain) {
		errs = append(errs, ErrorEmailDomainInvalid)
	}

	if len(user) < 1 || len(user) > 64 {
		errs = append(errs, ErrorEmailUserPartInvalidLength)
	}

	for i, r := range user {
		if r > unicode.MaxASCII || !(isASCIILetterOrDigit(byte(r)) || r == '+' || r == '.' || r == '-' || r == '_') {
			errs = append(errs, ErrorEmailUserPartIllegalChar)
			break
		}
		if (i == 0 || i == len(user)-1) && (r == '.' || r == '-' || r == '_') {
			errs = append(errs, ErrorEmailUserPartEdgeSymbols)
			break
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

func isASCIILetterOrDigit(b byte) bool {
	return (b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z') ||
		(b >= '0' && b <= '9')
}
