package finance

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a monetary amount with the symbol of the given ISO
// 4217 currency code. Unknown codes fall back to a plain two-decimal
// rendering with the code appended.
func FormatAmount(code string, amount float64) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		if code == "" {
			return fmt.Sprintf("%.2f", amount)
		}
		return fmt.Sprintf("%.2f %s", amount, code)
	}
	return amountPrinter.Sprintf("%v", currency.Symbol(unit.Amount(amount)))
}
