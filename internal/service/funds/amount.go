package funds

import (
	"strings"

	"github.com/shopspring/decimal"
)

// croreRupees is one crore in rupees.
var croreRupees = decimal.NewFromInt(10_000_000)

// ParseCroreAmount parses a form amount (in crore) and rejects anything
// non-numeric or non-positive.
func ParseCroreAmount(raw string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}
	return amount, true
}

// FormatINR renders a crore amount as rupees with Indian digit grouping:
// 0.5 crore -> "₹50,00,000". The last three digits form one group, the rest
// pair off ("₹12,34,56,789").
func FormatINR(crore decimal.Decimal) string {
	rupees := crore.Mul(croreRupees).Round(0)

	digits := rupees.Abs().BigInt().String()
	grouped := groupIndian(digits)

	if rupees.IsNegative() {
		return "-₹" + grouped
	}
	return "₹" + grouped
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(append(groups, tail), ",")
}
