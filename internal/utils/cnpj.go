package utils

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// IsValidCNPJ reports whether s is a checksum-valid CNPJ. Formatting
// characters ('.', '/', '-') are ignored; anything else that is not a digit
// makes the input invalid, as do inputs without exactly 14 digits and the
// all-repeated-digit sequences the registry never issues.
func IsValidCNPJ(s string) bool {
	digits := make([]int, 0, 14)
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '/' || r == '-':
			// formatting only
		default:
			return false
		}
	}
	if len(digits) != 14 {
		return false
	}

	repeated := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return false
	}

	return digits[12] == cnpjCheckDigit(digits[:12], cnpjFirstWeights) &&
		digits[13] == cnpjCheckDigit(digits[:13], cnpjSecondWeights)
}

// cnpjCheckDigit computes a mod-11 check digit over digits with the given
// weights; remainders 0 and 1 map to 0.
func cnpjCheckDigit(digits, weights []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}
