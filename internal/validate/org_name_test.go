package validate

import (
	"errors"
	"strings"
	"testing"
)

func TestOrgName_valid(t *testing.T) {
	for _, orgName := range []string{
		"acme",
		"Acme Corp",
		"acme-corp",
		"acme_corp",
		"Org 42",
		strings.Repeat("a", OrgNameMaxLength),
	} {
		if err := OrgName(orgName); err != nil {
			t.Errorf("expected name[%s] to be valid, got: %s", orgName, err)
		}
	}
}

func TestOrgName_tooShort(t *testing.T) {
	if err := OrgName("ab"); !errors.Is(err, ErrorStringTooShort) {
		t.Errorf("expected ErrorStringTooShort, got: %s", err)
	}
}

func TestOrgName_tooLong(t *testing.T) {
	if err := OrgName(strings.Repeat("a", OrgNameMaxLength+1)); !errors.Is(err, ErrorStringTooLong) {
		t.Errorf("expected ErrorStringTooLong, got: %s", err)
	}
}

func TestOrgName_invalidCharacters(t *testing.T) {
	for _, orgName := range []string{
		"acme!",
		"acme.corp",
		"acme/corp",
		"acme@corp",
		"café corp",
	} {
		if err := OrgName(orgName); !errors.Is(err, ErrorInvalidCharacter) {
			t.Errorf("expected name[%s] to fail with ErrorInvalidCharacter, got: %s", orgName, err)
		}
	}
}
