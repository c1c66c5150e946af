package db

import "strings"

// LikeEscaped is a LIKE comparison whose pattern was built with EscapeLike.
// '!' is the escape character because MySQL reads a backslash inside a
// string literal as its own escape.
const LikeEscaped = " LIKE ? ESCAPE '!'"

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// EscapeLike makes s match itself literally inside a LIKE pattern.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern matches columns containing term, compared lower-cased.
func ContainsPattern(term string) string {
	return "%" + EscapeLike(strings.ToLower(term)) + "%"
}
