// pkg/strcase/strcase.go

// Package strcase converts identifiers between the usual casings. Word
// splitting understands separators, camel humps and acronym runs;
// Unicode-aware casing goes through x/text.
package strcase

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// Split breaks an identifier into its lowercase words.
func Split(s string) []string {
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = nil
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r):
			// New word on a lower→upper hump, or at the end of an acronym
			// run ("HTTPServer" → http, server).
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				flush()
			} else if i > 0 && unicode.IsUpper(runes[i-1]) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				flush()
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

// ToSnake converts s to snake_case.
func ToSnake(s string) string {
	return strings.Join(Split(s), "_")
}

// ToKebab converts s to kebab-case.
func ToKebab(s string) string {
	return strings.Join(Split(s), "-")
}

// ToCamel converts s to camelCase.
func ToCamel(s string) string {
	words := Split(s)
	for i := 1; i < len(words); i++ {
		words[i] = titleCaser.String(words[i])
	}
	return strings.Join(words, "")
}

// ToPascal converts s to PascalCase.
func ToPascal(s string) string {
	words := Split(s)
	for i := range words {
		words[i] = titleCaser.String(words[i])
	}
	return strings.Join(words, "")
}

// ToTitle converts s to space-separated Title Case.
func ToTitle(s string) string {
	words := Split(s)
	for i := range words {
		words[i] = titleCaser.String(words[i])
	}
	return strings.Join(words, " ")
}
