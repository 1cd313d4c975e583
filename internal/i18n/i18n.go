// Package i18n holds the storefront dictionaries and language negotiation.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	Arabic  = "ar"
	English = "en"
)

var (
	supported = []language.Tag{language.Arabic, language.English}
	codes     = []string{Arabic, English}
	matcher   = language.NewMatcher(supported)
	// digits are always rendered latin, grouping follows English rules
	numbers = message.NewPrinter(language.English)
)

// T looks up key in lang, then English, then returns the key itself.
func T(lang, key string) string {
	if v, ok := dictionaries[Normalize(lang)][key]; ok {
		return v
	}
	if v, ok := dictionaries[English][key]; ok {
		return v
	}
	return key
}

// Normalize maps anything unsupported to "".
func Normalize(lang string) string {
	switch lang {
	case Arabic:
		return Arabic
	case English:
		return English
	}
	return ""
}

func IsRTL(lang string) bool {
	return Normalize(lang) == Arabic
}

func Dir(lang string) string {
	if IsRTL(lang) {
		return "rtl"
	}
	return "ltr"
}

// Negotiate picks the display language: an explicit choice wins, then the
// Accept-Language header, then def.
func Negotiate(explicit, acceptLanguage, def string) string {
	if l := Normalize(explicit); l != "" {
		return l
	}
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return codes[idx]
			}
		}
	}
	if l := Normalize(def); l != "" {
		return l
	}
	return Arabic
}

func FormatPrice(lang string, amount float64) string {
	return numbers.Sprintf("%.2f", amount) + " " + T(lang, "currency")
}
