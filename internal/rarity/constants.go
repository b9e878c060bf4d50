package rarity

// Display formatting
const (
	// displayFractionDigits bounds the decimals shown in "1 in N".
	displayFractionDigits = 2
	displayPrefix         = "1 in %v"
)
