package services

import (
	"net/mail"
	"unicode/utf8"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 50
	minNameLen     = 2
	maxNameLen     = 50
)

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return &ValidationError{Field: "email", Message: "Invalid email address"}
	}
	return nil
}

func validatePassword(field string, password []byte) error {
	n := utf8.RuneCount(password)
	switch {
	case n < minPasswordLen:
		return &ValidationError{Field: field, Message: "Password must be at least 6 characters"}
	case n > maxPasswordLen:
		return &ValidationError{Field: field, Message: "Password must be less than 50 characters"}
	}
	return nil
}

func validateFullName(name string) error {
	n := utf8.RuneCountInString(name)
	switch {
	case n < minNameLen:
		return &ValidationError{Field: "fullName", Message: "Full name must be at least 2 characters"}
	case n > maxNameLen:
		return &ValidationError{Field: "fullName", Message: "Full name must be less than 50 characters"}
	}
	return nil
}
