// Package turkcase provides Turkish-aware case folding for lexicon roots.
//
// Turkish distinguishes dotted and dotless "I": ASCII "I" lowercases to the
// dotless "ı" and the dotted capital "İ" lowercases to plain "i", which is
// the opposite of what Go's unicode.ToLower/ToUpper do for the ASCII letter.
package turkcase

import "strings"

// Lower properly lowercase-transforms s the Turkish way ("İ" -> "i", "I" -> "ı").
func Lower(s string) string {
	s = strings.ReplaceAll(s, "İ", "i")
	s = strings.ReplaceAll(s, "I", "ı")
	return strings.ToLower(s)
}

// Upper properly uppercase-transforms s the Turkish way ("i" -> "İ").
func Upper(s string) string {
	s = strings.ReplaceAll(s, "i", "İ")
	return strings.ToUpper(s)
}

// Capitalize properly capitalizes s the Turkish way: a leading "i" becomes
// "İ", any other "I" becomes "ı", and then the (possibly now different)
// first rune is uppercased and the rest lowercased.
func Capitalize(s string) string {
	if strings.HasPrefix(s, "i") {
		s = "İ" + s[len("i"):]
	}
	s = strings.ReplaceAll(s, "I", "ı")
	return capitalizeFirst(s)
}

// capitalizeFirst uppercases the first rune of s, Turkish-aware, and
// lowercases the rest with strings.ToLower.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	first := string(runes[0])
	rest := string(runes[1:])
	return Upper(first) + strings.ToLower(rest)
}
