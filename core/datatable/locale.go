package datatable

import "golang.org/x/text/language"

var defaultLocale = language.Und

// ParseLocale resolves a BCP 47 tag for the comparator, falling back to the
// root collation when s is empty.
func ParseLocale(s string) (language.Tag, error) {
	if s == "" {
		return defaultLocale, nil
	}
	return language.Parse(s)
}
