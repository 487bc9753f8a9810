package forms

import "testing"

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		field    string
		message  string
	}{
		{"valid", "a@b.com", "secret1", "", ""},
		{"missing email", "", "secret1", "email", "Email is required"},
		{"malformed email", "not-an-email", "secret1", "email", "Please enter a valid email"},
		{"email with spaces", "a b@c.com", "secret1", "email", "Please enter a valid email"},
		{"missing password", "a@b.com", "", "password", "Password is required"},
		{"short password", "a@b.com", "abc", "password", "Password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Login(tt.email, tt.password)
			if tt.field == "" {
				if !errs.Valid() {
					t.Fatalf("expected valid form, got %v", errs)
				}
				return
			}
			if got := errs[tt.field]; got != tt.message {
				t.Errorf("field %q: expected %q, got %q", tt.field, tt.message, got)
			}
		})
	}
}

func TestRegistration(t *testing.T) {
	tests := []struct {
		name            string
		userName        string
		email           string
		password        string
		confirmPassword string
		field           string
		message         string
	}{
		{"valid", "Alice", "a@b.com", "Secret1A", "Secret1A", "", ""},
		{"missing name", "", "a@b.com", "Secret1A", "Secret1A", "name", "Name is required"},
		{"short name", "A", "a@b.com", "Secret1A", "Secret1A", "name", "Name must be at least 2 characters"},
		{"weak password", "Alice", "a@b.com", "secretaa", "secretaa", "password", "Password must contain uppercase, lowercase, and number"},
		{"non-ASCII letters do not satisfy classes", "Alice", "a@b.com", "Пароль11", "Пароль11", "password", "Password must contain uppercase, lowercase, and number"},
		{"non-ASCII digits do not satisfy classes", "Alice", "a@b.com", "Secret١A", "Secret١A", "password", "Password must contain uppercase, lowercase, and number"},
		{"no confirmation", "Alice", "a@b.com", "Secret1A", "", "confirmPassword", "Please confirm your password"},
		{"mismatched confirmation", "Alice", "a@b.com", "Secret1A", "Secret1B", "confirmPassword", "Passwords do not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Registration(tt.userName, tt.email, tt.password, tt.confirmPassword)
			if tt.field == "" {
				if !errs.Valid() {
					t.Fatalf("expected valid form, got %v", errs)
				}
				return
			}
			if got := errs[tt.field]; got != tt.message {
				t.Errorf("field %q: expected %q, got %q", tt.field, tt.message, got)
			}
		})
	}
}

func TestDiscussion(t *testing.T) {
	if errs := Discussion("Alice", "New topic"); !errs.Valid() {
		t.Errorf("expected valid form, got %v", errs)
	}

	for _, tt := range []struct{ author, title string }{
		{"", "New topic"},
		{"Alice", ""},
		{"   ", "New topic"},
		{"", ""},
	} {
		errs := Discussion(tt.author, tt.title)
		if errs["form"] != "Please enter both name and topic title." {
			t.Errorf("author=%q title=%q: expected form error, got %v", tt.author, tt.title, errs)
		}
	}
}
