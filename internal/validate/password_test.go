package validate

import (
	"errors"
	"testing"
)

func TestPassword(t *testing.T) {
	if err := Password("short"); !errors.Is(err, ErrorPasswordTooShort) {
		t.Errorf("expected ErrorPasswordTooShort, got: %s", err)
	}
	if err := Password("long-enough"); err != nil {
		t.Errorf("expected password to be valid, got: %s", err)
	}
}
