package validate

import (
	"errors"
	"fmt"
	"unicode"
)

const (
	OrgNameMinLength = 3
	OrgNameMaxLength = 50
)

// allowedSymbolsInOrgName are the separators that name normalization
// collapses into underscores
var allowedSymbolsInOrgName = map[rune]bool{
	' ': true,
	'-': true,
	'_': true,
}

// OrgName validates an organization name. The lifecycle operations
// apply it to the normalized name so the length rules hold on what
// actually gets stored; the CLI also applies it to raw input, which is
// why separators stay in the allowed charset
func OrgName(orgName string) error {
	var errs []error

	if len(orgName) < OrgNameMinLength {
		errs = append(errs, ErrorStringTooShort)
	}
	if len(orgName) > OrgNameMaxLength {
		errs = append(errs, ErrorStringTooLong)
	}

	invalidCharacters := map[rune]struct{}{}
	for _, r := range orgName {
		if !isRuneAllowedInOrgName(r) {
			invalidCharacters[r] = struct{}{}
		}
	}
	if len(invalidCharacters) > 0 {
		for invalidCharacter := range invalidCharacters {
			errs = append(errs, fmt.Errorf("%w: character[%q] is not allowed", ErrorInvalidCharacter, invalidCharacter))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func isRuneAllowedInOrgName(r rune) bool {
	if r > unicode.MaxASCII {
		return false
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	return allowedSymbolsInOrgName[r]
}
