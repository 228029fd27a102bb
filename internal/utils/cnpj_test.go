package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCNPJ_Valid(t *testing.T) {
	valid := []string{
		"11.222.333/0001-81",
		"11222333000181",
		"00.000.000/0001-91",
		"00000000000191",
	}
	for _, cnpj := range valid {
		assert.True(t, IsValidCNPJ(cnpj), "expected %s to be valid", cnpj)
	}
}

func TestIsValidCNPJ_AlteredCheckDigits(t *testing.T) {
	invalid := []string{
		"11.222.333/0001-80", // second check digit off by one
		"11.222.333/0001-71", // first check digit off by one
		"00000000000192",
		"00000000000101",
	}
	for _, cnpj := range invalid {
		assert.False(t, IsValidCNPJ(cnpj), "expected %s to be invalid", cnpj)
	}
}

func TestIsValidCNPJ_RepeatedDigits(t *testing.T) {
	// Repunit sequences are rejected before the checksum runs, even the
	// ones whose check digits happen to work out.
	for _, cnpj := range []string{"00000000000000", "11111111111111", "99999999999999"} {
		assert.False(t, IsValidCNPJ(cnpj))
	}
}

func TestIsValidCNPJ_MalformedInput(t *testing.T) {
	invalid := []string{
		"",
		"1122233300018",    // 13 digits
		"112223330001811",  // 15 digits
		"11a22333000181",   // stray letter
		"11 222 333/0001-81", // spaces are not formatting
	}
	for _, cnpj := range invalid {
		assert.False(t, IsValidCNPJ(cnpj), "expected %q to be invalid", cnpj)
	}
}
