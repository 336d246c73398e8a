package utils

import "fmt"

// FormatAmount renders a money value for log lines and the stats feed,
// e.g. 9.98 -> "$9.98".
func FormatAmount(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
