package random

import (
	"crypto/rand"
	"math/big"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string

	// SampleStrings returns k distinct entries drawn uniformly without
	// replacement from the given slice. Returns nil if k > len(items).
	SampleStrings(items []string, k int) []string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	result, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fall back to 0 on error (should never happen with crypto/rand)
		return 0
	}
	return int(result.Int64())
}

// String generates a random string of the given length from the given alphabet
func (r *CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}

// SampleStrings draws k distinct entries via a partial Fisher-Yates shuffle
func (r *CryptoRandom) SampleStrings(items []string, k int) []string {
	return Sample(r, items, k)
}

// Sample is the shared partial Fisher-Yates implementation, driven by Intn
// so mock implementations can reuse it deterministically.
func Sample(r Random, items []string, k int) []string {
	if k < 0 || k > len(items) {
		return nil
	}
	working := make([]string, len(items))
	copy(working, items)
	for i := 0; i < k; i++ {
		j := i + r.Intn(len(working)-i)
		working[i], working[j] = working[j], working[i]
	}
	return working[:k]
}
