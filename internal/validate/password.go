package validate

import "errors"

const PasswordMinLength = 8

var ErrorPasswordTooShort = errors.New("password_too_short")

func Password(password string) error {
	if len(password) < PasswordMinLength {
		return ErrorPasswordTooShort
	}
	return nil
}
