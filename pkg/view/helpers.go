package view

// FormatPrice renders an amount the way the listing shows it.
// E.g., "1.5" ETH -> "1.5 ETH"; a missing amount shows the unit alone.
func FormatPrice(amount, unit string) string {
	if amount == "" {
		return unit
	}
	return amount + " " + unit
}
