package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePostInput(t *testing.T) {
	tests := []struct {
		name      string
		input     PostInput
		wantField string
		wantMsg   string
	}{
		{
			name:  "Valid text",
			input: PostInput{Text: "a perfectly fine post"},
		},
		{
			name:      "Empty text",
			input:     PostInput{Text: ""},
			wantField: "text",
			wantMsg:   "Text field is required",
		},
		{
			name:      "Whitespace only",
			input:     PostInput{Text: "   "},
			wantField: "text",
			wantMsg:   "Text field is required",
		},
		{
			name:      "Too short",
			input:     PostInput{Text: "short"},
			wantField: "text",
			wantMsg:   "Post must be between 10 and 300 characters",
		},
		{
			name:      "Too long",
			input:     PostInput{Text: strings.Repeat("a", 301)},
			wantField: "text",
			wantMsg:   "Post must be between 10 and 300 characters",
		},
		{
			name:  "Exactly at the upper bound",
			input: PostInput{Text: strings.Repeat("a", 300)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePostInput(tt.input)
			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.wantMsg, errs[tt.wantField])
		})
	}
}

func TestValidateRegisterInput(t *testing.T) {
	tests := []struct {
		name       string
		input      RegisterInput
		wantFields []string
	}{
		{
			name:  "Valid",
			input: RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"},
		},
		{
			name:       "All missing",
			input:      RegisterInput{},
			wantFields: []string{"name", "email", "password"},
		},
		{
			name:       "Invalid email",
			input:      RegisterInput{Name: "Alice", Email: "not-an-email", Password: "secret1"},
			wantFields: []string{"email"},
		},
		{
			name:       "Short password",
			input:      RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "abc"},
			wantFields: []string{"password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRegisterInput(tt.input)
			assert.Len(t, errs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, errs, f)
			}
		})
	}
}
