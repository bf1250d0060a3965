package ir

import (
	"strings"
	"unicode"
)

// Words splits a Go identifier into its camel-case words. Acronym runs stay
// together: "XAPIKey" -> ["X", "API", "Key"], "IncludePosts" -> ["Include",
// "Posts"]. Digits attach to the preceding word.
func Words(name string) []string {
	var words []string
	runes := []rune(name)

	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := false
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(cur):
			boundary = true
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			// End of an acronym run: the last upper starts the next word.
			boundary = true
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start < len(runes) {
		words = append(words, string(runes[start:]))
	}
	return words
}

// SnakeCase converts a Go identifier to snake_case: "IncludePosts" ->
// "include_posts", "APIKey" -> "api_key".
func SnakeCase(name string) string {
	words := Words(name)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// TrainCase converts a Go identifier to hyphenated Title-Case, the derived
// form for header keys: "XAPIKey" -> "X-Api-Key", "Trace" -> "Trace".
func TrainCase(name string) string {
	words := Words(name)
	for i, w := range words {
		words[i] = title(strings.ToLower(w))
	}
	return strings.Join(words, "-")
}

// LowerCamel converts a Go identifier to lowerCamelCase, used for builder
// slot names: "IncludePosts" -> "includePosts", "ID" -> "id".
func LowerCamel(name string) string {
	words := Words(name)
	if len(words) == 0 {
		return name
	}
	words[0] = strings.ToLower(words[0])
	return strings.Join(words, "")
}

// ExportName converts a snake_case or kebab-case name to an exported Go
// identifier: "new_user" -> "NewUser".
func ExportName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})
	for i, p := range parts {
		parts[i] = title(p)
	}
	return strings.Join(parts, "")
}

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
