// Package cbu validates Argentine CBU bank account codes.
//
// A CBU is a 22-character all-numeric string made of two blocks, each ending
// in a weighted-checksum check digit: block A holds 7 payload digits with its
// check digit at index 7, block B holds 13 payload digits with its check
// digit at index 21. Only the checksum arithmetic is implemented here; the
// banking meaning of the digits (bank code, branch, account) is deliberately
// not interpreted.
package cbu

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Length is the exact number of digits in a CBU.
const Length = 22

var (
	blockAWeights = []int{7, 1, 3, 9, 7, 1, 3}
	blockBWeights = []int{3, 9, 7, 1, 3, 9, 7, 1, 3, 9, 7, 1, 3}
)

// IsValid reports whether code is a well-formed CBU with both check digits
// matching the weighted-sum algorithm. Pure and stateless.
func IsValid(code string) bool {
	return Validate(code) == nil
}

// Validate checks that code is a well-formed CBU, returning a descriptive
// error for form-validation collaborators. The error never reveals which
// check digit failed beyond the checksum itself.
func Validate(code string) error {
	if len(code) != Length {
		return fmt.Errorf("cbu must be exactly %d characters", Length)
	}

	digits := make([]int, Length)
	for i := 0; i < Length; i++ {
		c := code[i]
		if c < '0' || c > '9' {
			return errors.New("cbu must contain only numeric characters")
		}
		digits[i] = int(c - '0')
	}

	if checkDigit(digits[0:7], blockAWeights) != digits[7] {
		return errors.New("cbu failed checksum validation")
	}
	if checkDigit(digits[8:21], blockBWeights) != digits[21] {
		return errors.New("cbu failed checksum validation")
	}

	return nil
}

// Generate creates a cryptographically random CBU that satisfies both
// checksums, for fixtures and tests.
func Generate() (string, error) {
	digits := make([]int, Length)

	for _, i := range []int{0, 1, 2, 3, 4, 5, 6, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20} {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = int(n.Int64())
	}

	digits[7] = checkDigit(digits[0:7], blockAWeights)
	digits[21] = checkDigit(digits[8:21], blockBWeights)

	code := make([]byte, Length)
	for i, d := range digits {
		code[i] = byte('0' + d)
	}
	return string(code), nil
}

// checkDigit computes the weighted-sum check digit for a block's payload
// digits: (10 - (sum(digit[i]*weight[i]) mod 10)) mod 10.
func checkDigit(digits, weights []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}
	return (10 - (sum % 10)) % 10
}
