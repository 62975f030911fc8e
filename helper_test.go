package dividash

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// PLN is a helper for test to create polish zloty money from const
func PLN(v float64) Money { return M(v, "PLN") }
