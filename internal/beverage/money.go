package beverage

import (
	"fmt"
	"math"
)

// Money is an amount in dollars
type Money float64

// Round rounds to whole cents
func (m Money) Round() Money {
	return Money(math.Round(float64(m)*100) / 100)
}

// Format renders the amount with the given currency symbol
func (m Money) Format(symbol string) string {
	return fmt.Sprintf("%s%.2f", symbol, float64(m.Round()))
}

func (m Money) String() string {
	return m.Format("$")
}
