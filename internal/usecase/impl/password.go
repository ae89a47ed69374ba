package impl

import (
	"unicode"

	"agenda/config"
)

const (
	defaultPasswordMinLength = 8
	defaultPasswordMaxLength = 128
)

// passwordPolicy validates password strength before the identity provider
// ever sees the credential, so weak passwords fail fast with a local message.
type passwordPolicy struct {
	minLength        int
	maxLength        int
	requireUppercase bool
	requireNumbers   bool
	requireSpecial   bool
}

func newPasswordPolicy(cfg *config.PasswordStrengthConfig) passwordPolicy {
	policy := passwordPolicy{
		minLength:        defaultPasswordMinLength,
		maxLength:        defaultPasswordMaxLength,
		requireUppercase: true,
		requireNumbers:   true,
		requireSpecial:   true,
	}

	if cfg == nil {
		return policy
	}

	if cfg.MinLength > 0 {
		policy.minLength = cfg.MinLength
	}
	if cfg.MaxLength > 0 {
		policy.maxLength = cfg.MaxLength
	}
	policy.requireUppercase = cfg.RequireUppercase
	policy.requireNumbers = cfg.RequireNumbers
	policy.requireSpecial = cfg.RequireSpecial

	return policy
}

// Validate reports whether the password meets the configured requirements.
func (p passwordPolicy) Validate(password string) bool {
	runes := []rune(password)
	if len(runes) < p.minLength || len(runes) > p.maxLength {
		return false
	}

	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSpecial = true
		}
	}

	if p.requireUppercase && !hasUpper {
		return false
	}
	if p.requireNumbers && !hasDigit {
		return false
	}
	if p.requireSpecial && !hasSpecial {
		return false
	}

	return true
}
