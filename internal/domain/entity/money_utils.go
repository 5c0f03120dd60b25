package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/bazaarhq/marketplace/internal/domain/error"
)

// Monetary values are carried through the domain as int64 cents. API input is
// accepted as a decimal string with at most two decimal places; anything finer
// is rejected rather than rounded, so a unit price times an integer quantity
// is always exact in cents.

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseAmount validates a decimal string and converts it to cents.
// "10" -> 1000, "10.5" -> 1050, "10.50" -> 1050. Negative values and more
// than two decimal places fail with ErrInvalidAmount.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, fmt.Errorf("%w: negative value", errs.ErrInvalidAmount)
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string
	if len(parts) == 1 {
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			integerValue = parts[0] + "00"
		case 1:
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// ParsePositiveAmount parses an amount that must be strictly greater than zero.
// Used for item prices, deposits and transfers.
func ParsePositiveAmount(amount string) (int64, error) {
	cents, err := ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if cents <= 0 {
		return 0, fmt.Errorf("%w: must be greater than zero", errs.ErrInvalidAmount)
	}
	return cents, nil
}

// CentsToString converts integer cents to a decimal string with exactly two
// decimal places. 1015 becomes "10.15", 1000 becomes "10.00".
func CentsToString(cents int64) string {
	isNegative := cents < 0
	if isNegative {
		cents = -cents
	}

	amountStr := strconv.FormatInt(cents, 10)
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}
