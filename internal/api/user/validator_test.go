package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input UserInput
		want  []Violation
	}{
		{
			name:  "valid input",
			input: UserInput{Name: "Al", Email: "al@x.com"},
			want:  nil,
		},
		{
			name:  "empty name only",
			input: UserInput{Name: "", Email: "a@b.com"},
			want: []Violation{
				{Field: "name", Message: "Name is required."},
			},
		},
		{
			name:  "whitespace-only name",
			input: UserInput{Name: "   ", Email: "a@b.com"},
			want: []Violation{
				{Field: "name", Message: "Name is required."},
			},
		},
		{
			name:  "name too short",
			input: UserInput{Name: "A", Email: "a@b.com"},
			want: []Violation{
				{Field: "name", Message: "Name must be at least 2 characters."},
			},
		},
		{
			name:  "invalid email format",
			input: UserInput{Name: "Al", Email: "not-an-email"},
			want: []Violation{
				{Field: "email", Message: "Email must be valid."},
			},
		},
		{
			name:  "email without domain dot",
			input: UserInput{Name: "Al", Email: "al@host"},
			want: []Violation{
				{Field: "email", Message: "Email must be valid."},
			},
		},
		{
			name:  "both empty, name first",
			input: UserInput{Name: "", Email: ""},
			want: []Violation{
				{Field: "name", Message: "Name is required."},
				{Field: "email", Message: "Email is required."},
			},
		},
		{
			name:  "short name and bad email collected together",
			input: UserInput{Name: "A", Email: "nope"},
			want: []Violation{
				{Field: "name", Message: "Name must be at least 2 characters."},
				{Field: "email", Message: "Email must be valid."},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Validate(tt.input)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_IsDeterministic(t *testing.T) {
	t.Parallel()

	input := UserInput{Name: "", Email: "bad"}
	first := Validate(input)
	second := Validate(input)
	assert.Equal(t, first, second)
}
