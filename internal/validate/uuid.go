package validate

import "github.com/google/uuid"

// Uuid verifies that `input` parses as a uuid, identifiers in token
// claims and catalog records are expected to pass this
func Uuid(input string) error {
	if _, err := uuid.Parse(input); err != nil {
		return ErrorInvalidUuid
	}
	return nil
}
