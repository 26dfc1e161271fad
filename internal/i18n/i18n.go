// Package i18n holds the message catalogs and resolves configured locale keys
// such as "de_DE" to printers.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	fallback = language.English
	matcher  = language.NewMatcher([]language.Tag{language.English, language.German})
)

// Tag converts a locale key in the "en_US" form to a language tag.
func Tag(locale string) language.Tag {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return fallback
	}
	return tag
}

// Printer returns a printer for the closest supported language.
func Printer(locale string) *message.Printer {
	tag, _, _ := matcher.Match(Tag(locale))
	return message.NewPrinter(tag)
}

// T translates key for locale. Unknown keys are returned as they are.
func T(locale, key string, args ...interface{}) string {
	return Printer(locale).Sprintf(key, args...)
}
