// Package validation contains request input validators.
package validation

import "strings"

// PostInput is the body shape shared by post creation and comment creation.
type PostInput struct {
	Text   string `json:"text"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

const (
	postTextMin = 10
	postTextMax = 300
)

// ValidatePostInput checks the required fields for post and comment
// creation. It returns a map of field name to message; an empty map means
// the input is valid.
func ValidatePostInput(in PostInput) map[string]string {
	errs := make(map[string]string)

	text := strings.TrimSpace(in.Text)
	if n := len([]rune(text)); text != "" && (n < postTextMin || n > postTextMax) {
		errs["text"] = "Post must be between 10 and 300 characters"
	}
	if text == "" {
		errs["text"] = "Text field is required"
	}

	return errs
}

// RegisterInput is the body shape for user registration.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateRegisterInput checks the required registration fields.
func ValidateRegisterInput(in RegisterInput) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Name field is required"
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		errs["email"] = "Email field is required"
	} else if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		errs["email"] = "Email is invalid"
	}
	if in.Password == "" {
		errs["password"] = "Password field is required"
	} else if len(in.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}

	return errs
}
