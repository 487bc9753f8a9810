// Package forms validates user-submitted forms before any mutation is
// attempted. Failures are per-field messages, not errors; an empty map
// means the form is valid.
package forms

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Errors maps field names to user-facing validation messages
type Errors map[string]string

// Valid reports whether no field failed validation
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Login validates the login form
func Login(email, password string) Errors {
	errs := Errors{}

	if strings.TrimSpace(email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "Please enter a valid email"
	}

	if password == "" {
		errs["password"] = "Password is required"
	} else if len(password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}

	return errs
}

// Registration validates the registration form
func Registration(name, email, password, confirmPassword string) Errors {
	errs := Errors{}

	trimmedName := strings.TrimSpace(name)
	if trimmedName == "" {
		errs["name"] = "Name is required"
	} else if len(trimmedName) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}

	if strings.TrimSpace(email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "Please enter a valid email"
	}

	if password == "" {
		errs["password"] = "Password is required"
	} else if len(password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	} else if !hasRequiredClasses(password) {
		errs["password"] = "Password must contain uppercase, lowercase, and number"
	}

	if confirmPassword == "" {
		errs["confirmPassword"] = "Please confirm your password"
	} else if password != confirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}

	return errs
}

// Discussion validates the new-discussion form
func Discussion(author, title string) Errors {
	errs := Errors{}
	if strings.TrimSpace(author) == "" || strings.TrimSpace(title) == "" {
		errs["form"] = "Please enter both name and topic title."
	}
	return errs
}

// hasRequiredClasses reports whether s contains at least one ASCII
// lowercase letter, one ASCII uppercase letter, and one ASCII digit.
// Letters and digits outside a-z/A-Z/0-9 do not count toward any class.
func hasRequiredClasses(s string) bool {
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return lower && upper && digit
}
