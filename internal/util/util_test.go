package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Ana.Garcia@Example.COM ", "ana.garcia@example.com"},
		{"usuario@dominio.es", "usuario@dominio.es"},
		{"\tMIXED@Case.Org\n", "mixed@case.org"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.input))
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   \t\n"))
	assert.False(t, IsBlank("x"))
	assert.False(t, IsBlank("  x  "))
}
