package domain

import "fmt"

// Prices are held in cents (Rand minor units) to keep line arithmetic exact.

// FormatRand renders cents as "R123.45".
func FormatRand(cents int64) string {
	return fmt.Sprintf("R%d.%02d", cents/100, cents%100)
}

// Rand converts cents to a decimal amount for JSON responses.
func Rand(cents int64) float64 {
	return float64(cents) / 100
}
