package domain

// Symbol is one face of the action dice.
type Symbol string

const (
	SymbolCoin    Symbol = "coin"    // +2 money on confirm
	SymbolEnergy  Symbol = "energy"  // +1 glitch energy on confirm
	SymbolPlant   Symbol = "plant"   // resolved manually at the table
	SymbolGrowth  Symbol = "growth"  // resolved manually at the table
	SymbolMystery Symbol = "mystery" // grants one mystery encounter this turn
	SymbolGlitch  Symbol = "glitch"  // wildcard, resolved manually at the table
)

// Symbols is the full 6-valued face set dice are drawn from.
var Symbols = []Symbol{
	SymbolCoin,
	SymbolEnergy,
	SymbolPlant,
	SymbolGrowth,
	SymbolMystery,
	SymbolGlitch,
}

// DiceCount dice are rolled each turn.
const DiceCount = 4

const (
	CoinMoneyValue    = 2
	EnergySymbolValue = 1
)

// ValidSymbol reports whether s belongs to the face set.
func ValidSymbol(s Symbol) bool {
	for _, v := range Symbols {
		if v == s {
			return true
		}
	}
	return false
}
