package lib

import "fmt"

// FormatMXN formats an amount in cents as a Mexican peso string, e.g. "$374.00 MXN"
func FormatMXN(cents uint64) string {
	return fmt.Sprintf("$%.2f MXN", float64(cents)/100)
}
