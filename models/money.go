package models

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var euroPrinter = message.NewPrinter(language.German)

// FormatCents renders cents the Austrian way, e.g. 123456 -> "1.234,56 €".
func FormatCents(cents int64) string {
	return euroPrinter.Sprintf("%v €", number.Decimal(float64(cents)/100, number.Scale(2)))
}
