package validate

import (
	"errors"
	"testing"
)

func TestEmail_valid(t *testing.T) {
	for _, email := range []string{
		"admin@example.com",
		"a.b-c_d+e@sub.example.co",
		"user123@example.io",
	} {
		if err := Email(email); err != nil {
			t.Errorf("expected email[%s] to be valid, got: %s", email, err)
		}
	}
}

func TestEmail_missing(t *testing.T) {
	if err := Email(""); !errors.Is(err, ErrorEmailMissing) {
		t.Errorf("expected ErrorEmailMissing, got: %s", err)
	}
}

func TestEmail_invalidAt(t *testing.T) {
	for _, email := range []string{
		"no-at-sign.example.com",
		"@example.com",
		"a@b@example.com",
	} {
		if err := Email(email); !errors.Is(err, ErrorEmailInvalidAt) {
			t.Errorf("expected email[%s] to fail with ErrorEmailInvalidAt, got: %s", email, err)
		}
	}
}

func TestEmail_domainInvalid(t *testing.T) {
	for _, email := range []string{
		"user@localhost",
		"user@-example.com",
		"user@example..com",
	} {
		if err := Email(email); !errors.Is(err, ErrorEmailDomainInvalid) {
			t.Errorf("expected email[%s] to fail with ErrorEmailDomainInvalid, got: %s", email, err)
		}
	}
}

func TestEmail_userPartIllegalChar(t *testing.T) {
	if err := Email("us er@example.com"); !errors.Is(err, ErrorEmailUserPartIllegalChar) {
		t.Errorf("expected ErrorEmailUserPartIllegalChar, got: %s", err)
	}
}

func TestEmail_userPartEdgeSymbols(t *testing.T) {
	for _, email := range []string{
		".user@example.com",
		"user.@example.com",
	} {
		if err := Email(email); !errors.Is(err, ErrorEmailUserPartEdgeSymbols) {
			t.Errorf("expected email[%s] to fail with ErrorEmailUserPartEdgeSymbols, got: %s", email, err)
		}
	}
}
