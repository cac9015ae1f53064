package model

import "strings"

// Language is one of the two supported display languages.
type Language string

const (
	LangBN Language = "bn"
	LangEN Language = "en"
)

// ParseLanguage accepts "bn"/"en" (case-insensitive, surrounding space ignored).
func ParseLanguage(s string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LangBN:
		return LangBN, true
	case LangEN:
		return LangEN, true
	}
	return "", false
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == LangEN {
		return LangBN
	}
	return LangEN
}

// LocalizedText is a value stored once per supported language.
// Both sides are required; Get never substitutes one language for the other.
type LocalizedText struct {
	BN string `json:"bn" validate:"required"`
	EN string `json:"en" validate:"required"`
}

// Get returns the side matching lang.
func (t LocalizedText) Get(lang Language) string {
	if lang == LangEN {
		return t.EN
	}
	return t.BN
}
