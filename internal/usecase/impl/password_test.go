package impl

import (
	"testing"

	"agenda/config"

	"github.com/stretchr/testify/assert"
)

func TestPasswordPolicy_Defaults(t *testing.T) {
	policy := newPasswordPolicy(nil)

	tests := []struct {
		password string
		valid    bool
	}{
		{"Segura123!", true},
		{"Abc123!x", true},
		{"Abc12!", false},        // below minimum length
		{"segura123!", false},    // no uppercase
		{"SeguraSegura!", false}, // no digit
		{"Segura12345", false},   // no special rune
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, policy.Validate(tt.password), "password %q", tt.password)
	}
}

func TestPasswordPolicy_Configurable(t *testing.T) {
	policy := newPasswordPolicy(&config.PasswordStrengthConfig{
		MinLength:        12,
		RequireUppercase: true,
		RequireNumbers:   false,
		RequireSpecial:   false,
	})

	assert.False(t, policy.Validate("Corta1!"), "shorter than the raised minimum")
	assert.True(t, policy.Validate("Sololetrasmayus"), "digits and specials not required")
	assert.False(t, policy.Validate("solominusculas12"), "uppercase still required")
}
