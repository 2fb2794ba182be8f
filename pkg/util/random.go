package util

import (
	"fmt"
	"math/rand"
)

// GenerateRandomNumber generates a random number between min and max (inclusive)
func GenerateRandomNumber(min, max int) int {
	return min + rand.Intn(max-min+1)
}

// RandomDigits returns a zero-padded string of n random decimal digits,
// used for SKU suffixes.
func RandomDigits(n int) string {
	max := 1
	for i := 0; i < n; i++ {
		max *= 10
	}
	return fmt.Sprintf("%0*d", n, rand.Intn(max))
}
