package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses an amount cell into cents. Both decimal conventions
// are accepted: "1,234.56" and "1.234,56" give the same result. The last
// separator in the string is taken as the decimal point.
func parseAmount(s string) (int64, error) {
	clean := strings.ReplaceAll(s, " ", "")

	lastDot := strings.LastIndexByte(clean, '.')
	lastComma := strings.LastIndexByte(clean, ',')

	if lastComma > lastDot {
		// European convention: dots group thousands, comma is decimal.
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	} else {
		clean = strings.ReplaceAll(clean, ",", "")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
