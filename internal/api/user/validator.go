package user

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"field" example:"name"`
	Message string `json:"message" example:"Name is required."`
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate checks an input against the field rules and collects every
// violation in declaration order (name rules first, then email). A missing
// field reports only its "required" violation, not the follow-up rules.
func Validate(input UserInput) []Violation {
	var violations []Violation

	if strings.TrimSpace(input.Name) == "" {
		violations = append(violations, Violation{Field: "name", Message: "Name is required."})
	} else if utf8.RuneCountInString(input.Name) < 2 {
		violations = append(violations, Violation{Field: "name", Message: "Name must be at least 2 characters."})
	}

	if input.Email == "" {
		violations = append(violations, Violation{Field: "email", Message: "Email is required."})
	} else if !emailRegex.MatchString(input.Email) {
		violations = append(violations, Violation{Field: "email", Message: "Email must be valid."})
	}

	return violations
}
