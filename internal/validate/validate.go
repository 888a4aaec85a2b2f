// Package validate holds the field-format checks applied to user input
// before it reaches persistence.
package validate

import "regexp"

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^(\+?\d{1,3})?\(?\d{2}\)?\d{8,9}$`)
)

func Email(email string) bool {
	return emailRe.MatchString(email)
}

// PhoneNumber accepts Brazilian-style numbers: optional country code, two
// digit area code, eight or nine digit subscriber number.
func PhoneNumber(phone string) bool {
	return phoneRe.MatchString(phone)
}

// Cpf validates the eleven-digit Brazilian taxpayer id, including both
// check digits. Dots and dashes are stripped first.
func Cpf(cpf string) bool {
	digits := make([]int, 0, 11)
	for _, r := range cpf {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '-':
			// separator, ignore
		default:
			return false
		}
	}
	if len(digits) != 11 {
		return false
	}

	for round := 0; round < 2; round++ {
		sum := 0
		n := 9 + round
		for i := 0; i < n; i++ {
			sum += digits[i] * (n + 1 - i)
		}
		check := 11 - sum%11
		if check > 9 {
			check = 0
		}
		if check != digits[n] {
			return false
		}
	}
	return true
}

// Password enforces the account password policy: 6 to 12 characters with at
// least one digit.
func Password(password string) bool {
	if len(password) < 6 || len(password) > 12 {
		return false
	}
	for _, r := range password {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// OnlyDigits reports whether s is non-empty and made of decimal digits.
func OnlyDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
