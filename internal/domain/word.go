package domain

import "strings"

// Entry is the stored value of a vocabulary word
type Entry struct {
	Meaning  string
	Category string
}

// Word is a vocabulary entry together with its key
type Word struct {
	Word     string
	Meaning  string
	Category string
}

// NewWord builds a Word from a key and its entry
func NewWord(key string, e Entry) Word {
	return Word{Word: key, Meaning: e.Meaning, Category: e.Category}
}

// NormalizeKey trims and lowercases a foreign word so that lookups
// ignore case and surrounding whitespace
func NormalizeKey(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
