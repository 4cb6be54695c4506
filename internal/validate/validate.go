package validate

import "errors"

var (
	ErrorEmptyString      = errors.New("empty_string")
	ErrorInvalidCharacter = errors.New("invalid_character")
	ErrorStringTooShort   = errors.New("string_too_short")
	ErrorStringTooLong    = errors.New("string_too_long")

	ErrorInvalidUuid = errors.New("invalid_uuid")
)
